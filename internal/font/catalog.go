package font

import "slices"

// Face describes what the font provider offers for a family.
type Face struct {
	Family    string
	Generic   string
	MinWeight int
	MaxWeight int
	Subsets   []string
}

// Catalog holds the families the site may request, keyed by family name.
type Catalog map[string]Face

// DefaultCatalog lists the Google Fonts families used by the site.
var DefaultCatalog = Catalog{
	"Geist": {
		Family:    "Geist",
		Generic:   "sans-serif",
		MinWeight: 100,
		MaxWeight: 900,
		Subsets:   []string{"cyrillic", "latin", "latin-ext"},
	},
	"Geist Mono": {
		Family:    "Geist Mono",
		Generic:   "monospace",
		MinWeight: 100,
		MaxWeight: 900,
		Subsets:   []string{"cyrillic", "latin", "latin-ext"},
	},
	"Manrope": {
		Family:    "Manrope",
		Generic:   "sans-serif",
		MinWeight: 200,
		MaxWeight: 800,
		Subsets:   []string{"cyrillic", "cyrillic-ext", "greek", "latin", "latin-ext", "vietnamese"},
	},
	"Space Grotesk": {
		Family:    "Space Grotesk",
		Generic:   "sans-serif",
		MinWeight: 300,
		MaxWeight: 700,
		Subsets:   []string{"latin", "latin-ext", "vietnamese"},
	},
}

func (f Face) hasSubset(subset string) bool {
	return slices.Contains(f.Subsets, subset)
}

func (f Face) hasWeight(weight int) bool {
	return weight%100 == 0 && weight >= f.MinWeight && weight <= f.MaxWeight
}
