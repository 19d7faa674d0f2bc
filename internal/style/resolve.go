package style

import (
	"fmt"
	"strings"

	"profilecraft/internal/catalog"
	"profilecraft/internal/design"
)

const (
	weightBold    = 700
	weightRegular = 500
	baseZIndex    = 10
)

// MaxParticles bounds the resolved particle count.
const MaxParticles = 200

// Resolve maps a design to concrete styles. Unknown font or animation ids
// never fail: fonts fall back to the default family and animations to
// none. When playing is false no layer is animated.
func Resolve(cfg design.Config, cat *catalog.Catalogs, playing bool) Result {
	layers := make([]LayerStyle, len(cfg.Layers))
	for i, l := range cfg.Layers {
		layers[i] = resolveLayer(i, l, cat, playing)
	}
	return Result{
		Canvas:    resolveCanvas(cfg, cat),
		Layers:    layers,
		Keyframes: Keyframes(cfg, cat),
	}
}

func resolveLayer(i int, l design.Layer, cat *catalog.Catalogs, playing bool) LayerStyle {
	weight := weightRegular
	if strings.Contains(l.FontID, "bold") {
		weight = weightBold
	}
	return LayerStyle{
		Text:       l.Text,
		FontID:     l.FontID,
		FontFamily: cat.FontFamily(l.FontID),
		FontWeight: weight,
		FontSize:   l.FontSize,
		Color:      l.Color,
		Opacity:    l.Opacity,
		Rotation:   l.Rotation,
		Top:        l.PositionY,
		ZIndex:     i + baseZIndex,
		Effect:     textEffect(l),
		Animation:  layerAnimation(l, cat, playing),
	}
}

// textEffect applies shadow before glow; a layer never gets both.
func textEffect(l design.Layer) TextEffect {
	switch {
	case l.ShadowEnabled:
		return TextEffect{Kind: EffectShadow, X: l.ShadowX, Y: l.ShadowY, Blur: l.ShadowBlur, Color: l.ShadowColor}
	case l.GlowEnabled:
		return TextEffect{Kind: EffectGlow, Blur: l.GlowSize, Color: l.GlowColor}
	default:
		return TextEffect{Kind: EffectNone}
	}
}

func layerAnimation(l design.Layer, cat *catalog.Catalogs, playing bool) *Animation {
	if !playing || l.AnimationID == "" {
		return nil
	}
	anim, ok := cat.Animations.Lookup(l.AnimationID)
	if !ok {
		return nil
	}
	return &Animation{
		Name:     anim.ID,
		Duration: l.AnimationDuration,
		Delay:    l.AnimationDelay,
		Easing:   l.AnimationEasing,
		Infinite: anim.Loops(),
	}
}

func resolveCanvas(cfg design.Config, cat *catalog.Catalogs) CanvasStyle {
	c := CanvasStyle{
		Background:    cfg.BackgroundColor,
		Gradient:      cfg.Gradient,
		GradientAngle: cfg.GradientAngle,
		Color:         cfg.BackgroundColor,
		Color2:        cfg.GradientColor2,
		BorderRadius:  cfg.BorderRadius,
		BorderWidth:   cfg.BorderWidth,
		BorderColor:   cfg.BorderColor,
		Opacity:       cfg.GlobalOpacity,
	}
	if cfg.Gradient {
		c.Background = fmt.Sprintf("linear-gradient(%sdeg, %s, %s)", num(cfg.GradientAngle), cfg.BackgroundColor, cfg.GradientColor2)
	}

	if bg, ok := cat.Backgrounds.Lookup(cfg.BackgroundEffectID); ok && bg.GenerateCSS != nil {
		c.Overlay = bg.GenerateCSS(catalog.Params{
			"color":  cfg.AccentColor,
			"color1": cfg.BackgroundColor,
			"color2": cfg.BackgroundColor2,
			"color3": cfg.AccentColor,
			"angle":  num(cfg.GradientAngle),
		})
	}

	if p, ok := cat.Particles.Lookup(cfg.ParticleID); ok && p.Glyph != "" {
		count := cfg.ParticleCount
		if count <= 0 {
			count = p.DefaultCount
		}
		count = min(count, MaxParticles)
		c.Particles = &Particles{
			EffectID:      p.ID,
			Glyph:         p.Glyph,
			Color:         cfg.ParticleColor,
			Count:         count,
			AnimationName: p.AnimationName,
			Keyframes:     p.Keyframes,
		}
	}
	return c
}

// Keyframes collects the keyframe rules of every animation referenced by a
// layer, each once, in order of first use. Unknown ids are skipped. The
// output depends only on cfg and cat.
func Keyframes(cfg design.Config, cat *catalog.Catalogs) string {
	var b strings.Builder
	seen := make(map[string]struct{}, len(cfg.Layers))
	for _, l := range cfg.Layers {
		if l.AnimationID == "" {
			continue
		}
		if _, dup := seen[l.AnimationID]; dup {
			continue
		}
		seen[l.AnimationID] = struct{}{}
		if anim, ok := cat.Animations.Lookup(l.AnimationID); ok {
			b.WriteString(anim.Keyframes)
			b.WriteString("\n")
		}
	}
	return b.String()
}
