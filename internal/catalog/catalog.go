package catalog

import (
	"sync"

	"profilecraft/internal/design"
)

// Catalogs bundles every registry the editor reads from.
type Catalogs struct {
	Animations  *Registry[Animation]
	Fonts       *Registry[Font]
	Particles   *Registry[ParticleEffect]
	Backgrounds *Registry[BackgroundEffect]
	Templates   *Registry[Template]
}

// DefaultTemplateID is the template a fresh session starts from.
const DefaultTemplateID = "corporateClean"

var defaultCatalogs = sync.OnceValue(func() *Catalogs {
	return &Catalogs{
		Animations:  newAnimations(),
		Fonts:       newFonts(),
		Particles:   newParticles(),
		Backgrounds: newBackgrounds(),
		Templates:   newTemplates(),
	}
})

// Default returns the built-in catalogs. The value is shared and must not
// be modified.
func Default() *Catalogs {
	return defaultCatalogs()
}

// FontFamily resolves a font id to its CSS family, falling back to
// DefaultFamily.
func (c *Catalogs) FontFamily(fontID string) string {
	if f, ok := c.Fonts.Lookup(fontID); ok {
		return f.Family
	}
	return DefaultFamily
}

// TemplateConfig returns a fresh copy of the template's design.
func (c *Catalogs) TemplateConfig(id string) (design.Config, bool) {
	t, ok := c.Templates.Lookup(id)
	if !ok {
		return design.Config{}, false
	}
	return t.Config.Clone(), true
}
