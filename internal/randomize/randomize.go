// Package randomize produces new designs by sampling the catalogs. All
// operations draw from one injected random source so a seeded source
// yields a reproducible sequence.
package randomize

import (
	"fmt"
	"math/rand/v2"

	"profilecraft/internal/catalog"
	"profilecraft/internal/design"
)

const (
	minDuration   = 0.5
	durationRange = 2.0
	colorSpace    = 1 << 24
)

// Randomizer samples catalogs uniformly. It is not safe for concurrent use.
type Randomizer struct {
	rng *rand.Rand
	cat *catalog.Catalogs
}

// New returns a Randomizer drawing from rng.
func New(rng *rand.Rand, cat *catalog.Catalogs) *Randomizer {
	return &Randomizer{rng: rng, cat: cat}
}

// NewSeeded returns a Randomizer over a PCG source seeded with seed.
func NewSeeded(seed uint64, cat *catalog.Catalogs) *Randomizer {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), cat)
}

// Template picks a template uniformly and returns it as a full replacement
// for cfg, layers included. With an empty template catalog cfg is returned
// unchanged.
func (r *Randomizer) Template(cfg design.Config) design.Config {
	n := r.cat.Templates.Len()
	if n == 0 {
		return cfg.Clone()
	}
	return r.cat.Templates.At(r.rng.IntN(n)).Config.Clone()
}

// Color returns a uniformly sampled opaque #rrggbb color.
func (r *Randomizer) Color() string {
	return fmt.Sprintf("#%06x", r.rng.IntN(colorSpace))
}

// Colors overrides the six palette colors of cfg and nothing else.
func (r *Randomizer) Colors(cfg design.Config) design.Config {
	return design.Derive(cfg, design.ConfigPatch{
		BackgroundColor:  design.Set(r.Color()),
		BackgroundColor2: design.Set(r.Color()),
		AccentColor:      design.Set(r.Color()),
		BorderColor:      design.Set(r.Color()),
		GradientColor2:   design.Set(r.Color()),
		ParticleColor:    design.Set(r.Color()),
	})
}

// Animation picks a global animation and a duration in [0.5, 2.5). Layer
// animations are left alone.
func (r *Randomizer) Animation(cfg design.Config) design.Config {
	n := r.cat.Animations.Len()
	if n == 0 {
		return cfg.Clone()
	}
	id := r.cat.Animations.At(r.rng.IntN(n)).ID
	duration := minDuration + r.rng.Float64()*durationRange
	return design.Derive(cfg, design.ConfigPatch{
		AnimationID:       &id,
		AnimationDuration: &duration,
	})
}

// Font gives the layer at index a uniformly chosen font. An out of range
// index leaves cfg unchanged.
func (r *Randomizer) Font(cfg design.Config, index int) design.Config {
	n := r.cat.Fonts.Len()
	if n == 0 {
		return cfg.Clone()
	}
	id := r.cat.Fonts.At(r.rng.IntN(n)).ID
	return design.DeriveLayer(cfg, index, design.LayerPatch{FontID: &id})
}
