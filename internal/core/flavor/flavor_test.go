package flavor

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeusync/cellarena/internal/core/random"
)

func TestNamesAreCapitalised(t *testing.T) {
	n := NewNames([]string{"alice", "bob"})
	src := random.New(1)
	for i := 0; i < 20; i++ {
		require.Contains(t, []string{"Alice", "Bob"}, n.Name(src))
	}
}

func TestDefaultNames(t *testing.T) {
	n := NewNames(nil)
	require.NotEmpty(t, n.Name(random.New(5)))
}

func TestPaletteChannels(t *testing.T) {
	p := NewPalette(random.New(9))
	colors := p.colors
	require.Len(t, colors, PaletteSize)

	hex := regexp.MustCompile(`^#0[0-4][89a-f][0-9a-f][89a-f][0-9a-f]$`)
	for _, c := range colors {
		require.Regexp(t, hex, c)
	}
	require.Contains(t, colors, p.Color(random.New(2)))
}

func TestPaletteIsSeeded(t *testing.T) {
	require.Equal(t, NewPalette(random.New(4)).colors, NewPalette(random.New(4)).colors)
}

func TestPhrases(t *testing.T) {
	p := NewPhrases([]string{"yum"})
	require.Equal(t, "yum", p.Phrase(random.New(1)))
	require.NotEmpty(t, NewPhrases(nil).Phrase(random.New(1)))
}
