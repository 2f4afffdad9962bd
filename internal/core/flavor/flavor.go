// Package flavor supplies the cosmetic collaborators of a simulation: display
// names, colours and the phrases a cell says after a meal. Nothing here
// influences sizes, positions or headings.
package flavor

import (
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/zeusync/cellarena/internal/core/random"
)

// PaletteSize is the number of colours generated up front.
const PaletteSize = 255

var defaultNames = []string{
	"ada", "bruno", "cleo", "dmitri", "esme", "felix", "greta", "hugo",
	"ines", "jonas", "kira", "luca", "mila", "nico", "olga", "pavel",
	"quinn", "rosa", "sven", "tilda", "ugo", "vera", "wendel", "xenia",
	"yuri", "zora", "amoeba", "blob", "plankton", "spore", "paramecium", "vorticella",
}

var defaultAbsorbPhrases = []string{
	"Delicious!",
	"Nom nom nom.",
	"You were tasty.",
	"Growing strong.",
	"Is that all?",
	"Next!",
	"Thanks for the snack.",
	"Bigger every day.",
	"That hit the spot.",
	"Mine now.",
}

// Names hands out capitalised display names.
type Names struct {
	names []string
}

// NewNames capitalises the given names once. A nil list uses the built-in set.
func NewNames(names []string) *Names {
	if len(names) == 0 {
		names = defaultNames
	}
	caser := cases.Title(language.English)
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = caser.String(n)
	}
	return &Names{names: out}
}

func (n *Names) Name(src random.Source) string {
	return random.Pick(src, n.names)
}

// Palette is a fixed set of bright cyan-leaning colours: red 0-4, green and
// blue 128-255.
type Palette struct {
	colors []string
}

func NewPalette(src random.Source) *Palette {
	colors := make([]string, PaletteSize)
	for i := range colors {
		c := colorful.Color{
			R: float64(src.Intn(5)) / 255,
			G: float64(128+src.Intn(128)) / 255,
			B: float64(128+src.Intn(128)) / 255,
		}
		colors[i] = c.Hex()
	}
	return &Palette{colors: colors}
}

func (p *Palette) Color(src random.Source) string {
	return random.Pick(src, p.colors)
}

// Phrases picks absorb phrases.
type Phrases struct {
	phrases []string
}

func NewPhrases(phrases []string) *Phrases {
	if len(phrases) == 0 {
		phrases = defaultAbsorbPhrases
	}
	return &Phrases{phrases: append([]string(nil), phrases...)}
}

func (p *Phrases) Phrase(src random.Source) string {
	return random.Pick(src, p.phrases)
}
