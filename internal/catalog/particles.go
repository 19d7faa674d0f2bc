package catalog

// ParticleCategory groups particle overlays.
type ParticleCategory string

const (
	Ambient     ParticleCategory = "ambient"
	Celebration ParticleCategory = "celebration"
	Tech        ParticleCategory = "tech"
	Nature      ParticleCategory = "nature"
)

// ParticleEffect is a decorative overlay of many small animated glyphs.
type ParticleEffect struct {
	ID            string
	Name          string
	Category      ParticleCategory
	Glyph         string
	DefaultCount  int
	Colorizable   bool
	AnimationName string
	Keyframes     string
}

func (p ParticleEffect) Key() string { return p.ID }

func newParticles() *Registry[ParticleEffect] {
	return NewRegistry(
		ParticleEffect{
			ID: "none", Name: "None", Category: Ambient,
		},
		ParticleEffect{
			ID: "sparkles", Name: "Sparkles", Category: Ambient, Glyph: "✦",
			DefaultCount: 30, Colorizable: true, AnimationName: "particleTwinkle",
			Keyframes: keyframes("particleTwinkle",
				"  0%, 100% { opacity: 0; transform: scale(0.5); }\n"+
					"  50% { opacity: 1; transform: scale(1); }\n"),
		},
		ParticleEffect{
			ID: "bubbles", Name: "Bubbles", Category: Ambient, Glyph: "○",
			DefaultCount: 20, Colorizable: true, AnimationName: "particleRise",
			Keyframes: keyframes("particleRise",
				"  from { opacity: 0.8; transform: translateY(0); }\n"+
					"  to { opacity: 0; transform: translateY(-400px); }\n"),
		},
		ParticleEffect{
			ID: "confetti", Name: "Confetti", Category: Celebration, Glyph: "▪",
			DefaultCount: 50, Colorizable: true, AnimationName: "particleFall",
			Keyframes: keyframes("particleFall",
				"  from { transform: translateY(-20px) rotate(0deg); }\n"+
					"  to { transform: translateY(420px) rotate(720deg); }\n"),
		},
		ParticleEffect{
			ID: "binary", Name: "Binary", Category: Tech, Glyph: "01",
			DefaultCount: 40, Colorizable: true, AnimationName: "particleFall",
			Keyframes: keyframes("particleFall",
				"  from { transform: translateY(-20px) rotate(0deg); }\n"+
					"  to { transform: translateY(420px) rotate(720deg); }\n"),
		},
		ParticleEffect{
			ID: "snowflakes", Name: "Snowflakes", Category: Nature, Glyph: "❄",
			DefaultCount: 35, Colorizable: false, AnimationName: "particleDrift",
			Keyframes: keyframes("particleDrift",
				"  0% { transform: translate(0, -20px); }\n"+
					"  50% { transform: translate(20px, 200px); }\n"+
					"  100% { transform: translate(-10px, 420px); }\n"),
		},
	)
}
