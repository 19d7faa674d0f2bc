// Package design defines the declarative value that describes one banner:
// canvas-wide properties plus an ordered list of text layers. Configs are
// values; changing one means deriving a new Config, never editing a
// snapshot in place.
package design

import "reflect"

// Layer is one positioned, styled text element. Layer order is stacking
// order.
type Layer struct {
	Text     string  `json:"text" yaml:"text"`
	FontID   string  `json:"fontId" yaml:"fontId"`
	FontSize float64 `json:"fontSize" yaml:"fontSize"`
	Color    string  `json:"color" yaml:"color"`
	Opacity  float64 `json:"opacity" yaml:"opacity"`
	Rotation float64 `json:"rotation" yaml:"rotation"`
	// PositionY is the vertical offset from the top of the canvas in pixels.
	PositionY float64 `json:"positionY" yaml:"positionY"`

	ShadowEnabled bool    `json:"shadowEnabled" yaml:"shadowEnabled"`
	ShadowX       float64 `json:"shadowX" yaml:"shadowX"`
	ShadowY       float64 `json:"shadowY" yaml:"shadowY"`
	ShadowBlur    float64 `json:"shadowBlur" yaml:"shadowBlur"`
	ShadowColor   string  `json:"shadowColor" yaml:"shadowColor"`

	GlowEnabled bool    `json:"glowEnabled" yaml:"glowEnabled"`
	GlowSize    float64 `json:"glowSize" yaml:"glowSize"`
	GlowColor   string  `json:"glowColor" yaml:"glowColor"`

	// AnimationID may be empty, meaning no animation.
	AnimationID       string  `json:"animationId" yaml:"animationId"`
	AnimationDuration float64 `json:"animationDuration" yaml:"animationDuration"`
	AnimationDelay    float64 `json:"animationDelay" yaml:"animationDelay"`
	AnimationEasing   string  `json:"animationEasing" yaml:"animationEasing"`
}

// Config is the whole design document.
type Config struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category"`

	BackgroundColor  string  `json:"backgroundColor" yaml:"backgroundColor"`
	BackgroundColor2 string  `json:"backgroundColor2" yaml:"backgroundColor2"`
	Gradient         bool    `json:"gradient" yaml:"gradient"`
	GradientAngle    float64 `json:"gradientAngle" yaml:"gradientAngle"`
	GradientColor2   string  `json:"gradientColor2" yaml:"gradientColor2"`
	AccentColor      string  `json:"accentColor" yaml:"accentColor"`
	TextColor        string  `json:"textColor" yaml:"textColor"`

	BorderRadius  float64 `json:"canvasBorderRadius" yaml:"canvasBorderRadius"`
	BorderWidth   float64 `json:"canvasBorderWidth" yaml:"canvasBorderWidth"`
	BorderColor   string  `json:"canvasBorderColor" yaml:"canvasBorderColor"`
	GlobalOpacity float64 `json:"globalOpacity" yaml:"globalOpacity"`

	AnimationID       string  `json:"animationId" yaml:"animationId"`
	AnimationDuration float64 `json:"animationDuration" yaml:"animationDuration"`
	AnimationDelay    float64 `json:"animationDelay" yaml:"animationDelay"`

	ParticleID         string `json:"particleId" yaml:"particleId"`
	ParticleColor      string `json:"particleColor" yaml:"particleColor"`
	ParticleCount      int    `json:"particleCount" yaml:"particleCount"`
	BackgroundEffectID string `json:"backgroundEffectId" yaml:"backgroundEffectId"`

	Layers []Layer `json:"layers" yaml:"layers"`
}

// Clone returns a copy that shares no memory with c.
func (c Config) Clone() Config {
	out := c
	if c.Layers != nil {
		out.Layers = make([]Layer, len(c.Layers))
		copy(out.Layers, c.Layers)
	}
	return out
}

// Layer returns the layer at i, or false when i is out of range.
func (c Config) Layer(i int) (Layer, bool) {
	if i < 0 || i >= len(c.Layers) {
		return Layer{}, false
	}
	return c.Layers[i], true
}

// Equal reports structural equality. A nil and an empty layer list compare
// equal.
func (c Config) Equal(o Config) bool {
	if len(c.Layers) == 0 && len(o.Layers) == 0 {
		c.Layers, o.Layers = nil, nil
	}
	return reflect.DeepEqual(c, o)
}
