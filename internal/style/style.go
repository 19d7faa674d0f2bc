// Package style derives concrete presentational styles from a design and
// the catalogs. Everything here is a pure function of its inputs.
package style

import (
	"fmt"
	"strconv"
	"strings"
)

// EffectKind is the text effect applied to a layer.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectShadow
	EffectGlow
)

func (k EffectKind) String() string {
	switch k {
	case EffectShadow:
		return "shadow"
	case EffectGlow:
		return "glow"
	default:
		return "none"
	}
}

// TextEffect is a resolved shadow or glow. Glow is a zero-offset shadow
// whose Blur is the glow size.
type TextEffect struct {
	Kind  EffectKind
	X     float64
	Y     float64
	Blur  float64
	Color string
}

// CSS renders the text-shadow value.
func (e TextEffect) CSS() string {
	switch e.Kind {
	case EffectShadow:
		return fmt.Sprintf("%spx %spx %spx %s", num(e.X), num(e.Y), num(e.Blur), e.Color)
	case EffectGlow:
		return fmt.Sprintf("0 0 %spx %s", num(e.Blur), e.Color)
	default:
		return "none"
	}
}

// Animation is an applied keyframe animation.
type Animation struct {
	Name     string
	Duration float64
	Delay    float64
	Easing   string
	// Infinite animations repeat forever; the rest play once and keep
	// their final frame.
	Infinite bool
}

// CSS renders the animation shorthand. A nil animation renders "none".
func (a *Animation) CSS() string {
	if a == nil {
		return "none"
	}
	iteration := "forwards"
	if a.Infinite {
		iteration = "infinite"
	}
	return fmt.Sprintf("%s %ss %s %ss %s", a.Name, num(a.Duration), a.Easing, num(a.Delay), iteration)
}

// LayerStyle is the resolved presentation of one layer.
type LayerStyle struct {
	Text       string
	FontID     string
	FontFamily string
	FontWeight int
	FontSize   float64
	Color      string
	Opacity    float64
	Rotation   float64
	Top        float64
	ZIndex     int
	Effect     TextEffect
	Animation  *Animation
}

// Declarations renders the layer as inline CSS declarations.
func (l LayerStyle) Declarations() string {
	decls := []string{
		"position: absolute",
		"white-space: nowrap",
		"font-size: " + num(l.FontSize) + "px",
		"color: " + l.Color,
		"font-family: " + l.FontFamily,
		"font-weight: " + strconv.Itoa(l.FontWeight),
		"opacity: " + num(l.Opacity),
		"transform: rotate(" + num(l.Rotation) + "deg)",
		"top: " + num(l.Top) + "px",
		"z-index: " + strconv.Itoa(l.ZIndex),
		"text-shadow: " + l.Effect.CSS(),
		"animation: " + l.Animation.CSS(),
	}
	return strings.Join(decls, "; ") + ";"
}

// Particles is a resolved particle overlay.
type Particles struct {
	EffectID      string
	Glyph         string
	Color         string
	Count         int
	AnimationName string
	Keyframes     string
}

// CanvasStyle is the resolved presentation of the canvas itself.
type CanvasStyle struct {
	// Background is the CSS background value.
	Background    string
	Gradient      bool
	GradientAngle float64
	Color         string
	Color2        string
	BorderRadius  float64
	BorderWidth   float64
	BorderColor   string
	Opacity       float64
	// Overlay holds the background effect's CSS declarations, empty when
	// the configured effect is unknown.
	Overlay   string
	Particles *Particles
}

// Declarations renders the canvas box as inline CSS declarations.
func (c CanvasStyle) Declarations() string {
	decls := []string{
		"border-radius: " + num(c.BorderRadius) + "px",
		"border: " + num(c.BorderWidth) + "px solid " + c.BorderColor,
		"background: " + c.Background,
		"opacity: " + num(c.Opacity),
	}
	return strings.Join(decls, "; ") + ";"
}

// Result is everything the presentation layer needs to draw a design.
type Result struct {
	Canvas CanvasStyle
	Layers []LayerStyle
	// Keyframes is the stylesheet text of every animation the layers use.
	Keyframes string
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
