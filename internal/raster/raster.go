// Package raster turns a resolved design into a PNG image. It draws the
// resting state of the design; CSS-only decoration such as animations and
// background pattern overlays is not rasterized.
package raster

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand/v2"
	"time"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"

	"profilecraft/internal/style"
)

const (
	CanvasWidth  = 1280
	CanvasHeight = 400
	DefaultScale = 2
)

// Filename names an export taken at t.
func Filename(t time.Time) string {
	return fmt.Sprintf("github-header-%d.png", t.UnixMilli())
}

// Renderer draws resolved designs.
type Renderer struct {
	Width  int
	Height int
	Scale  float64
	Fonts  FontSource
}

// NewRenderer returns a renderer for the standard banner size at 2x.
func NewRenderer(fonts FontSource) *Renderer {
	return &Renderer{
		Width:  CanvasWidth,
		Height: CanvasHeight,
		Scale:  DefaultScale,
		Fonts:  fonts,
	}
}

// Capture renders surface and encodes it as PNG.
func (r *Renderer) Capture(ctx context.Context, surface style.Result) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.Fonts == nil {
		return nil, fmt.Errorf("raster: no font source")
	}
	scale := r.Scale
	if scale <= 0 {
		scale = 1
	}
	pw, ph := int(float64(r.Width)*scale), int(float64(r.Height)*scale)
	w, h := float64(r.Width), float64(r.Height)

	dc := gg.NewContext(pw, ph)
	dc.Scale(scale, scale)

	canvas := surface.Canvas
	r.drawBackground(dc, canvas, w, h)
	r.drawParticles(dc, canvas.Particles, w, h)

	for i, layer := range surface.Layers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := r.drawLayer(dc, layer, w); err != nil {
			return nil, fmt.Errorf("draw layer %d: %w", i, err)
		}
	}

	dc.ResetClip()
	drawBorder(dc, canvas, w, h)

	img := withOpacity(dc.Image(), canvas.Opacity)
	var buf bytes.Buffer
	if err := gg.NewContextForImage(img).EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawBackground(dc *gg.Context, c style.CanvasStyle, w, h float64) {
	dc.DrawRoundedRectangle(0, 0, w, h, c.BorderRadius)
	dc.Clip()

	if c.Gradient {
		x0, y0, x1, y1 := GradientLine(c.GradientAngle, w, h)
		grad := gg.NewLinearGradient(x0, y0, x1, y1)
		grad.AddColorStop(0, parseColor(c.Color, 1))
		grad.AddColorStop(1, parseColor(c.Color2, 1))
		dc.SetFillStyle(grad)
	} else {
		dc.SetColor(parseColor(c.Color, 1))
	}
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()
}

// GradientLine follows CSS linear-gradient geometry: 0deg points up, 90deg
// points right, and the line is long enough for the corners to hit the end
// colors.
func GradientLine(angle, w, h float64) (x0, y0, x1, y1 float64) {
	rad := gg.Radians(angle)
	dx, dy := math.Sin(rad), -math.Cos(rad)
	half := (math.Abs(w*dx) + math.Abs(h*dy)) / 2
	cx, cy := w/2, h/2
	return cx - dx*half, cy - dy*half, cx + dx*half, cy + dy*half
}

func drawBorder(dc *gg.Context, c style.CanvasStyle, w, h float64) {
	if c.BorderWidth <= 0 {
		return
	}
	bw := c.BorderWidth
	dc.SetLineWidth(bw)
	dc.SetColor(parseColor(c.BorderColor, 1))
	dc.DrawRoundedRectangle(bw/2, bw/2, w-bw, h-bw, math.Max(c.BorderRadius-bw/2, 0))
	dc.Stroke()
}

func (r *Renderer) drawParticles(dc *gg.Context, p *style.Particles, w, h float64) {
	if p == nil || p.Count <= 0 {
		return
	}
	// Fixed seed: the same design always rasterizes the same way.
	rng := rand.New(rand.NewPCG(uint64(p.Count), uint64(len(p.EffectID))))
	dc.SetColor(parseColor(p.Color, 0.6))
	for i := 0; i < p.Count; i++ {
		dc.DrawCircle(rng.Float64()*w, rng.Float64()*h, 1+rng.Float64()*2)
		dc.Fill()
	}
}

func (r *Renderer) drawLayer(dc *gg.Context, l style.LayerStyle, w float64) error {
	if l.Text == "" || l.FontSize <= 0 {
		return nil
	}
	face, err := r.Fonts.Face(l.FontFamily, l.FontWeight, l.FontSize)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)

	_, th := dc.MeasureString(l.Text)
	x, y := w/2, l.Top

	dc.Push()
	defer dc.Pop()
	if l.Rotation != 0 {
		dc.RotateAbout(gg.Radians(l.Rotation), x, y+th/2)
	}

	switch l.Effect.Kind {
	case style.EffectShadow:
		c := parseColor(l.Effect.Color, l.Opacity)
		spread(dc, l.Text, x+l.Effect.X, y+l.Effect.Y, l.Effect.Blur/2, c)
	case style.EffectGlow:
		c := parseColor(l.Effect.Color, l.Opacity*0.35)
		spread(dc, l.Text, x, y, l.Effect.Blur/2, c)
	}

	dc.SetColor(parseColor(l.Color, l.Opacity))
	dc.DrawStringAnchored(l.Text, x, y, 0.5, 1)
	return nil
}

// spread approximates a blurred text shadow by stamping the text around
// (x, y) at the given radius.
func spread(dc *gg.Context, text string, x, y, radius float64, c color.Color) {
	dc.SetColor(c)
	if radius < 0.5 {
		dc.DrawStringAnchored(text, x, y, 0.5, 1)
		return
	}
	for i := 0; i < 8; i++ {
		a := float64(i) * math.Pi / 4
		for _, r := range []float64{radius / 2, radius} {
			dc.DrawStringAnchored(text, x+r*math.Cos(a), y+r*math.Sin(a), 0.5, 1)
		}
	}
}

func withOpacity(src image.Image, opacity float64) image.Image {
	if opacity >= 1 {
		return src
	}
	if opacity < 0 {
		opacity = 0
	}
	dst := image.NewRGBA(src.Bounds())
	mask := image.NewUniform(color.Alpha{A: uint8(math.Round(opacity * 255))})
	draw.DrawMask(dst, dst.Bounds(), src, src.Bounds().Min, mask, image.Point{}, draw.Over)
	return dst
}

var fallbackColor = colorful.Color{R: 1, G: 1, B: 1}

// parseColor reads #rgb or #rrggbb with the given opacity. Anything else
// renders white.
func parseColor(hex string, opacity float64) color.NRGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		c = fallbackColor
	}
	r, g, b := c.Clamped().RGB255()
	opacity = math.Min(math.Max(opacity, 0), 1)
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(opacity * 255))}
}
