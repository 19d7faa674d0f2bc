package design

// Set returns a pointer to v, for building patches.
func Set[T any](v T) *T { return &v }

// ConfigPatch names the canvas-level fields to override. A nil field is
// left unchanged. A nil Layers slice keeps the base layers.
type ConfigPatch struct {
	ID       *string
	Name     *string
	Category *string

	BackgroundColor  *string
	BackgroundColor2 *string
	Gradient         *bool
	GradientAngle    *float64
	GradientColor2   *string
	AccentColor      *string
	TextColor        *string

	BorderRadius  *float64
	BorderWidth   *float64
	BorderColor   *string
	GlobalOpacity *float64

	AnimationID       *string
	AnimationDuration *float64
	AnimationDelay    *float64

	ParticleID         *string
	ParticleColor      *string
	ParticleCount      *int
	BackgroundEffectID *string

	Layers []Layer
}

// LayerPatch names the fields of a single layer to override.
type LayerPatch struct {
	Text      *string
	FontID    *string
	FontSize  *float64
	Color     *string
	Opacity   *float64
	Rotation  *float64
	PositionY *float64

	ShadowEnabled *bool
	ShadowX       *float64
	ShadowY       *float64
	ShadowBlur    *float64
	ShadowColor   *string

	GlowEnabled *bool
	GlowSize    *float64
	GlowColor   *string

	AnimationID       *string
	AnimationDuration *float64
	AnimationDelay    *float64
	AnimationEasing   *string
}

func apply[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// Derive returns a new Config equal to base with the patched fields
// replaced. No validation happens here; unknown catalog ids and out of
// range numbers are resolved downstream.
func Derive(base Config, p ConfigPatch) Config {
	c := base.Clone()

	apply(&c.ID, p.ID)
	apply(&c.Name, p.Name)
	apply(&c.Category, p.Category)

	apply(&c.BackgroundColor, p.BackgroundColor)
	apply(&c.BackgroundColor2, p.BackgroundColor2)
	apply(&c.Gradient, p.Gradient)
	apply(&c.GradientAngle, p.GradientAngle)
	apply(&c.GradientColor2, p.GradientColor2)
	apply(&c.AccentColor, p.AccentColor)
	apply(&c.TextColor, p.TextColor)

	apply(&c.BorderRadius, p.BorderRadius)
	apply(&c.BorderWidth, p.BorderWidth)
	apply(&c.BorderColor, p.BorderColor)
	apply(&c.GlobalOpacity, p.GlobalOpacity)

	apply(&c.AnimationID, p.AnimationID)
	apply(&c.AnimationDuration, p.AnimationDuration)
	apply(&c.AnimationDelay, p.AnimationDelay)

	apply(&c.ParticleID, p.ParticleID)
	apply(&c.ParticleColor, p.ParticleColor)
	apply(&c.ParticleCount, p.ParticleCount)
	apply(&c.BackgroundEffectID, p.BackgroundEffectID)

	if p.Layers != nil {
		c.Layers = make([]Layer, len(p.Layers))
		copy(c.Layers, p.Layers)
	}
	return c
}

// DeriveLayer returns a new Config whose layer at index has the patched
// fields replaced. Sibling layers and layer order are untouched. An out of
// range index yields an unchanged copy of base.
func DeriveLayer(base Config, index int, p LayerPatch) Config {
	c := base.Clone()
	if index < 0 || index >= len(c.Layers) {
		return c
	}
	l := &c.Layers[index]

	apply(&l.Text, p.Text)
	apply(&l.FontID, p.FontID)
	apply(&l.FontSize, p.FontSize)
	apply(&l.Color, p.Color)
	apply(&l.Opacity, p.Opacity)
	apply(&l.Rotation, p.Rotation)
	apply(&l.PositionY, p.PositionY)

	apply(&l.ShadowEnabled, p.ShadowEnabled)
	apply(&l.ShadowX, p.ShadowX)
	apply(&l.ShadowY, p.ShadowY)
	apply(&l.ShadowBlur, p.ShadowBlur)
	apply(&l.ShadowColor, p.ShadowColor)

	apply(&l.GlowEnabled, p.GlowEnabled)
	apply(&l.GlowSize, p.GlowSize)
	apply(&l.GlowColor, p.GlowColor)

	apply(&l.AnimationID, p.AnimationID)
	apply(&l.AnimationDuration, p.AnimationDuration)
	apply(&l.AnimationDelay, p.AnimationDelay)
	apply(&l.AnimationEasing, p.AnimationEasing)
	return c
}
