package catalog

import (
	"net/url"
	"strings"
)

// FontCategory is the typographic family a font belongs to.
type FontCategory string

const (
	Sans        FontCategory = "sans"
	Serif       FontCategory = "serif"
	Display     FontCategory = "display"
	Mono        FontCategory = "mono"
	Handwriting FontCategory = "handwriting"
)

// DefaultFamily is used whenever a font id is unknown or not loaded yet.
const DefaultFamily = "system-ui"

// Font describes one remotely hosted web font.
type Font struct {
	ID       string
	Name     string
	Family   string
	Category FontCategory
	Weights  []int
	// Remote is the family descriptor for the remote font service,
	// e.g. "family=Inter:wght@400;700".
	Remote string
}

func (f Font) Key() string { return f.ID }

// Bold reports whether the font id names a bold cut.
func (f Font) Bold() bool { return strings.Contains(f.ID, "bold") }

const fontServiceBase = "https://fonts.googleapis.com/css2?"

// StylesheetURL joins every font descriptor into one stylesheet request.
func StylesheetURL(fonts []Font) string {
	parts := make([]string, 0, len(fonts)+1)
	for _, f := range fonts {
		if f.Remote == "" {
			continue
		}
		parts = append(parts, f.Remote)
	}
	parts = append(parts, "display=swap")
	return fontServiceBase + strings.Join(parts, "&")
}

func remote(family string, weights string) string {
	return "family=" + url.QueryEscape(family) + ":wght@" + weights
}

func newFonts() *Registry[Font] {
	return NewRegistry(
		Font{ID: "inter", Name: "Inter", Family: "'Inter', sans-serif", Category: Sans, Weights: []int{400, 700}, Remote: remote("Inter", "400;700")},
		Font{ID: "inter-bold", Name: "Inter Bold", Family: "'Inter', sans-serif", Category: Sans, Weights: []int{700}, Remote: remote("Inter", "700")},
		Font{ID: "poppins", Name: "Poppins", Family: "'Poppins', sans-serif", Category: Sans, Weights: []int{400, 600}, Remote: remote("Poppins", "400;600")},
		Font{ID: "montserrat-bold", Name: "Montserrat Bold", Family: "'Montserrat', sans-serif", Category: Sans, Weights: []int{800}, Remote: remote("Montserrat", "800")},
		Font{ID: "playfair", Name: "Playfair Display", Family: "'Playfair Display', serif", Category: Serif, Weights: []int{400, 700}, Remote: remote("Playfair Display", "400;700")},
		Font{ID: "merriweather", Name: "Merriweather", Family: "'Merriweather', serif", Category: Serif, Weights: []int{400}, Remote: remote("Merriweather", "400")},
		Font{ID: "bebas", Name: "Bebas Neue", Family: "'Bebas Neue', display", Category: Display, Weights: []int{400}, Remote: remote("Bebas Neue", "400")},
		Font{ID: "orbitron-bold", Name: "Orbitron Bold", Family: "'Orbitron', sans-serif", Category: Display, Weights: []int{700}, Remote: remote("Orbitron", "700")},
		Font{ID: "press-start", Name: "Press Start 2P", Family: "'Press Start 2P', cursive", Category: Display, Weights: []int{400}, Remote: remote("Press Start 2P", "400")},
		Font{ID: "fira-code", Name: "Fira Code", Family: "'Fira Code', monospace", Category: Mono, Weights: []int{400, 600}, Remote: remote("Fira Code", "400;600")},
		Font{ID: "jetbrains-mono", Name: "JetBrains Mono", Family: "'JetBrains Mono', monospace", Category: Mono, Weights: []int{400}, Remote: remote("JetBrains Mono", "400")},
		Font{ID: "pacifico", Name: "Pacifico", Family: "'Pacifico', cursive", Category: Handwriting, Weights: []int{400}, Remote: remote("Pacifico", "400")},
		Font{ID: "caveat", Name: "Caveat", Family: "'Caveat', cursive", Category: Handwriting, Weights: []int{400, 700}, Remote: remote("Caveat", "400;700")},
	)
}
