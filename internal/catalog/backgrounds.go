package catalog

import "fmt"

// BackgroundCategory groups background effects.
type BackgroundCategory string

const (
	GradientBackground BackgroundCategory = "gradient"
	PatternBackground  BackgroundCategory = "pattern"
	AnimatedBackground BackgroundCategory = "animated"
)

// Params feeds a background effect's CSS generator. Recognised keys are
// color, color1, color2, color3 and angle.
type Params map[string]string

func (p Params) get(key, fallback string) string {
	if v, ok := p[key]; ok && v != "" {
		return v
	}
	return fallback
}

// BackgroundEffect renders a canvas background layer as CSS declarations.
type BackgroundEffect struct {
	ID                   string
	Name                 string
	Type                 string
	Description          string
	Category             BackgroundCategory
	DefaultOpacity       float64
	SupportsAnimation    bool
	SupportsColorization bool
	GenerateCSS          func(Params) string
}

func (b BackgroundEffect) Key() string { return b.ID }

func newBackgrounds() *Registry[BackgroundEffect] {
	return NewRegistry(
		BackgroundEffect{
			ID: "solidColor", Name: "Solid Color", Type: "solid", Category: GradientBackground,
			Description: "Single solid background color", DefaultOpacity: 1, SupportsColorization: true,
			GenerateCSS: func(p Params) string {
				return fmt.Sprintf("background: %s;", p.get("color", "#000000"))
			},
		},
		BackgroundEffect{
			ID: "linearGradient", Name: "Linear Gradient", Type: "linearGradient", Category: GradientBackground,
			Description: "Classic linear color blend", DefaultOpacity: 1, SupportsColorization: true,
			GenerateCSS: func(p Params) string {
				return fmt.Sprintf("background: linear-gradient(%sdeg, %s, %s);",
					p.get("angle", "45"), p.get("color1", "#000"), p.get("color2", "#fff"))
			},
		},
		BackgroundEffect{
			ID: "radialGradient", Name: "Radial Gradient", Type: "radialGradient", Category: GradientBackground,
			Description: "Circular color blend", DefaultOpacity: 1, SupportsColorization: true,
			GenerateCSS: func(p Params) string {
				return fmt.Sprintf("background: radial-gradient(circle, %s, %s);",
					p.get("color1", "#000"), p.get("color2", "#fff"))
			},
		},
		BackgroundEffect{
			ID: "conicGradient", Name: "Conic Gradient", Type: "conicGradient", Category: GradientBackground,
			Description: "Spinning color wheel", DefaultOpacity: 1, SupportsColorization: true,
			GenerateCSS: func(p Params) string {
				c1 := p.get("color1", "#f00")
				return fmt.Sprintf("background: conic-gradient(from 0deg, %s, %s, %s, %s);",
					c1, p.get("color2", "#0f0"), p.get("color3", "#00f"), c1)
			},
		},
		BackgroundEffect{
			ID: "dotGrid", Name: "Dot Grid", Type: "dotGrid", Category: PatternBackground,
			Description: "Dotted pattern overlay", DefaultOpacity: 0.3, SupportsColorization: true,
			GenerateCSS: func(p Params) string {
				return fmt.Sprintf("background-image: radial-gradient(circle, %s 1px, transparent 1px); background-size: 20px 20px;",
					p.get("color", "#ffffff"))
			},
		},
		BackgroundEffect{
			ID: "diagonalStripes", Name: "Diagonal Stripes", Type: "diagonalStripes", Category: PatternBackground,
			Description: "Angled line pattern", DefaultOpacity: 0.2, SupportsColorization: true,
			GenerateCSS: func(p Params) string {
				c := p.get("color", "#ffffff")
				return fmt.Sprintf("background: repeating-linear-gradient(45deg, transparent, transparent 35px, %s33 35px, %s33 70px);", c, c)
			},
		},
		BackgroundEffect{
			ID: "starField", Name: "Star Field", Type: "starField", Category: PatternBackground,
			Description: "Scattered stars", DefaultOpacity: 0.5, SupportsColorization: true,
			GenerateCSS: func(p Params) string {
				c := p.get("color", "#ffffff")
				return fmt.Sprintf("background-image: radial-gradient(1px 1px at 20px 30px, %s, transparent), radial-gradient(1px 1px at 90px 40px, %s, transparent); background-size: 120px 120px;", c, c)
			},
		},
		BackgroundEffect{
			ID: "aurora", Name: "Aurora", Type: "aurora", Category: AnimatedBackground,
			Description: "Northern lights", DefaultOpacity: 0.6, SupportsAnimation: true, SupportsColorization: true,
			GenerateCSS: func(p Params) string {
				return fmt.Sprintf("background: linear-gradient(120deg, %s, %s, %s); background-size: 300%% 300%%; animation: gradient 12s ease infinite;",
					p.get("color1", "#00c9ff"), p.get("color2", "#92fe9d"), p.get("color3", "#7f00ff"))
			},
		},
		BackgroundEffect{
			ID: "fire", Name: "Fire", Type: "fire", Category: AnimatedBackground,
			Description: "Warm flicker from below", DefaultOpacity: 0.5, SupportsAnimation: true,
			GenerateCSS: func(Params) string {
				return "background: linear-gradient(180deg, rgba(255,200,0,0.3) 0%, rgba(255,100,0,0.2) 50%, rgba(255,0,0,0.1) 100%); animation: flicker 0.15s linear infinite;"
			},
		},
	)
}
