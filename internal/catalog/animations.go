package catalog

// AnimationCategory groups animations by how they play back.
type AnimationCategory string

const (
	Entrance   AnimationCategory = "entrance"
	Continuous AnimationCategory = "continuous"
	Special    AnimationCategory = "special"
)

// Animation is one named CSS keyframe animation.
type Animation struct {
	ID                string
	Name              string
	Category          AnimationCategory
	Description       string
	Keyframes         string
	DefaultDuration   float64
	DefaultDelay      float64
	DefaultEasing     string
	SupportsIntensity bool
	SupportsDirection bool
}

func (a Animation) Key() string { return a.ID }

// Loops reports whether the animation repeats forever during playback.
func (a Animation) Loops() bool { return a.Category == Continuous }

// EasingOption is a labelled CSS timing function.
type EasingOption struct {
	Label string
	Value string
}

var easingOptions = []EasingOption{
	{Label: "Linear", Value: "linear"},
	{Label: "Ease In", Value: "ease-in"},
	{Label: "Ease Out", Value: "ease-out"},
	{Label: "Ease In-Out", Value: "ease-in-out"},
	{Label: "Bounce (elastic)", Value: "cubic-bezier(0.34, 1.56, 0.64, 1)"},
	{Label: "Overshoot", Value: "cubic-bezier(0.68, -0.55, 0.265, 1.55)"},
}

// EasingOptions returns the selectable timing functions.
func EasingOptions() []EasingOption {
	out := make([]EasingOption, len(easingOptions))
	copy(out, easingOptions)
	return out
}

func keyframes(name, body string) string {
	return "@keyframes " + name + " {\n" + body + "}\n"
}

func newAnimations() *Registry[Animation] {
	return NewRegistry(
		Animation{
			ID: "fadeIn", Name: "Fade In", Category: Entrance,
			Description: "Classic opacity transition",
			Keyframes: keyframes("fadeIn",
				"  from { opacity: 0; }\n"+
					"  to { opacity: 1; }\n"),
			DefaultDuration: 1, DefaultEasing: "ease-in-out",
		},
		Animation{
			ID: "slideLeft", Name: "Slide Left", Category: Entrance,
			Description: "Slides from right edge",
			Keyframes: keyframes("slideLeft",
				"  from { opacity: 0; transform: translateX(100px); }\n"+
					"  to { opacity: 1; transform: translateX(0); }\n"),
			DefaultDuration: 0.8, DefaultEasing: "ease-out", SupportsIntensity: true,
		},
		Animation{
			ID: "slideRight", Name: "Slide Right", Category: Entrance,
			Description: "Slides from left edge",
			Keyframes: keyframes("slideRight",
				"  from { opacity: 0; transform: translateX(-100px); }\n"+
					"  to { opacity: 1; transform: translateX(0); }\n"),
			DefaultDuration: 0.8, DefaultEasing: "ease-out", SupportsIntensity: true,
		},
		Animation{
			ID: "slideUp", Name: "Slide Up", Category: Entrance,
			Description: "Rises from bottom",
			Keyframes: keyframes("slideUp",
				"  from { opacity: 0; transform: translateY(100px); }\n"+
					"  to { opacity: 1; transform: translateY(0); }\n"),
			DefaultDuration: 0.8, DefaultEasing: "ease-out", SupportsIntensity: true,
		},
		Animation{
			ID: "zoomIn", Name: "Zoom In", Category: Entrance,
			Description: "Grows from a point",
			Keyframes: keyframes("zoomIn",
				"  from { opacity: 0; transform: scale(0.3); }\n"+
					"  to { opacity: 1; transform: scale(1); }\n"),
			DefaultDuration: 0.6, DefaultEasing: "ease-out", SupportsIntensity: true,
		},
		Animation{
			ID: "typewriter", Name: "Typewriter", Category: Entrance,
			Description: "Characters appear one by one",
			Keyframes: keyframes("typewriter",
				"  from { width: 0; }\n"+
					"  to { width: 100%; }\n"),
			DefaultDuration: 3, DefaultEasing: "steps(40, end)",
		},
		Animation{
			ID: "glitch", Name: "Glitch", Category: Entrance,
			Description: "Digital distortion reveal",
			Keyframes: keyframes("glitch",
				"  0% { opacity: 0; transform: translate(-2px, -2px); }\n"+
					"  20% { opacity: 1; transform: translate(2px, 2px); color: #FF10F0; }\n"+
					"  40% { transform: translate(-2px, 2px); color: #00FFFF; }\n"+
					"  60% { transform: translate(2px, -2px); color: #FF10F0; }\n"+
					"  100% { opacity: 1; transform: translate(0, 0); }\n"),
			DefaultDuration: 0.5, DefaultEasing: "linear", SupportsIntensity: true,
		},
		Animation{
			ID: "bounceIn", Name: "Bounce In", Category: Entrance,
			Description: "Elastic pop",
			Keyframes: keyframes("bounceIn",
				"  0% { opacity: 0; transform: scale(0); }\n"+
					"  50% { opacity: 1; transform: scale(1.1); }\n"+
					"  100% { opacity: 1; transform: scale(1); }\n"),
			DefaultDuration: 0.8, DefaultEasing: "cubic-bezier(0.34, 1.56, 0.64, 1)", SupportsIntensity: true,
		},
		Animation{
			ID: "rotateIn", Name: "Rotate In", Category: Entrance,
			Description: "Spins into place",
			Keyframes: keyframes("rotateIn",
				"  from { opacity: 0; transform: rotate(-45deg) scale(0.5); }\n"+
					"  to { opacity: 1; transform: rotate(0) scale(1); }\n"),
			DefaultDuration: 0.8, DefaultEasing: "ease-out", SupportsDirection: true,
		},
		Animation{
			ID: "blurIn", Name: "Blur In", Category: Entrance,
			Description: "Comes into focus",
			Keyframes: keyframes("blurIn",
				"  from { opacity: 0; filter: blur(20px); }\n"+
					"  to { opacity: 1; filter: blur(0); }\n"),
			DefaultDuration: 1, DefaultEasing: "ease-in-out", SupportsIntensity: true,
		},
		Animation{
			ID: "pulse", Name: "Pulse", Category: Continuous,
			Description: "Breathing scale effect",
			Keyframes: keyframes("pulse",
				"  0%, 100% { opacity: 1; transform: scale(1); }\n"+
					"  50% { opacity: 0.7; transform: scale(1.05); }\n"),
			DefaultDuration: 2, DefaultEasing: "ease-in-out", SupportsIntensity: true,
		},
		Animation{
			ID: "glow", Name: "Glow", Category: Continuous,
			Description: "Neon breathing glow",
			Keyframes: keyframes("glow",
				"  0%, 100% { text-shadow: 0 0 5px currentColor; }\n"+
					"  50% { text-shadow: 0 0 20px currentColor; }\n"),
			DefaultDuration: 2, DefaultEasing: "ease-in-out", SupportsIntensity: true,
		},
		Animation{
			ID: "float", Name: "Float", Category: Continuous,
			Description: "Gentle hovering",
			Keyframes: keyframes("float",
				"  0%, 100% { transform: translateY(0px); }\n"+
					"  50% { transform: translateY(-20px); }\n"),
			DefaultDuration: 3, DefaultEasing: "ease-in-out", SupportsIntensity: true,
		},
		Animation{
			ID: "shake", Name: "Shake", Category: Continuous,
			Description: "Nervous jitter",
			Keyframes: keyframes("shake",
				"  0%, 100% { transform: translateX(0); }\n"+
					"  25% { transform: translateX(-3px); }\n"+
					"  50% { transform: translateX(3px); }\n"+
					"  75% { transform: translateX(-3px); }\n"),
			DefaultDuration: 0.5, DefaultEasing: "linear", SupportsIntensity: true,
		},
		Animation{
			ID: "rainbow", Name: "Rainbow", Category: Continuous,
			Description: "Cycles through the spectrum",
			Keyframes: keyframes("rainbow",
				"  0% { color: #FF0000; }\n"+
					"  33.33% { color: #FFFF00; }\n"+
					"  66.67% { color: #0000FF; }\n"+
					"  100% { color: #FF0000; }\n"),
			DefaultDuration: 4, DefaultEasing: "linear",
		},
		Animation{
			ID: "flicker", Name: "Flicker", Category: Continuous,
			Description: "Failing neon sign",
			Keyframes: keyframes("flicker",
				"  0%, 19%, 21%, 23%, 25%, 54%, 56%, 100% { opacity: 1; }\n"+
					"  20%, 24%, 55% { opacity: 0.3; }\n"),
			DefaultDuration: 2, DefaultEasing: "linear",
		},
		Animation{
			ID: "rotateLoop", Name: "Rotate Loop", Category: Continuous,
			Description: "Endless spin",
			Keyframes: keyframes("rotateLoop",
				"  from { transform: rotate(0deg); }\n"+
					"  to { transform: rotate(360deg); }\n"),
			DefaultDuration: 4, DefaultEasing: "linear", SupportsDirection: true,
		},
		Animation{
			ID: "gradientShift", Name: "Gradient Shift", Category: Continuous,
			Description: "Hue rotation",
			Keyframes: keyframes("gradientShift",
				"  0% { filter: hue-rotate(0deg); }\n"+
					"  100% { filter: hue-rotate(360deg); }\n"),
			DefaultDuration: 5, DefaultEasing: "linear",
		},
		Animation{
			ID: "matrixRain", Name: "Matrix Rain", Category: Special,
			Description: "Drops in from above",
			Keyframes: keyframes("matrixRain",
				"  0% { opacity: 0; transform: translateY(-100px); }\n"+
					"  70% { opacity: 1; }\n"+
					"  100% { opacity: 1; transform: translateY(0); }\n"),
			DefaultDuration: 1.5, DefaultEasing: "cubic-bezier(0.68, -0.55, 0.265, 1.55)",
		},
		Animation{
			ID: "neonTube", Name: "Neon Tube", Category: Special,
			Description: "Tube lighting up",
			Keyframes: keyframes("neonTube",
				"  0% { text-shadow: 0 0 10px currentColor, 0 0 20px currentColor; opacity: 0; }\n"+
					"  50% { opacity: 0.5; }\n"+
					"  100% { text-shadow: 0 0 5px currentColor, 0 0 10px currentColor; opacity: 1; }\n"),
			DefaultDuration: 1.5, DefaultEasing: "ease-in-out",
		},
		Animation{
			ID: "hologram", Name: "Hologram", Category: Special,
			Description: "Shimmering projection",
			Keyframes: keyframes("hologram",
				"  0%, 100% { opacity: 1; filter: hue-rotate(0deg); }\n"+
					"  25% { opacity: 0.8; filter: hue-rotate(90deg); }\n"+
					"  50% { opacity: 0.6; filter: hue-rotate(180deg); }\n"+
					"  75% { opacity: 0.8; filter: hue-rotate(270deg); }\n"),
			DefaultDuration: 3, DefaultEasing: "linear",
		},
	)
}
