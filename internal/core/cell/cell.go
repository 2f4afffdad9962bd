// Package cell implements a single simulated cell: its state, the size-driven
// speed law, movement with wall reflection, flee/chase reactions and
// collision resolution against another cell.
package cell

import (
	"math"

	"github.com/google/uuid"

	"github.com/zeusync/cellarena/internal/core/random"
	"github.com/zeusync/cellarena/internal/core/systems/physics"
)

// Namer supplies display names for new cells.
type Namer interface {
	Name(src random.Source) string
}

// Painter supplies display colours for new cells.
type Painter interface {
	Color(src random.Source) string
}

// Phraser supplies the line a cell shows after absorbing another.
type Phraser interface {
	Phrase(src random.Source) string
}

// Cell is a circular actor. Size is its diameter; Size 0 marks it for removal.
// Speed is recomputed from Size on every Advance and is not meant to be set.
type Cell struct {
	ID      uuid.UUID
	Pos     physics.Vec2
	Heading float64
	Speed   float64
	Size    float64

	EscapeCooldown float64
	AttackCooldown float64

	Kills int

	Name        string
	Color       string
	Phrase      string
	PhraseTimer float64
}

func New(id uuid.UUID, pos physics.Vec2, size, heading float64, name, color string) *Cell {
	return &Cell{
		ID:      id,
		Pos:     pos,
		Size:    clampSize(size),
		Heading: physics.NormalizeHeading(heading),
		Name:    name,
		Color:   color,
	}
}

func (c *Cell) Radius() float64 { return c.Size / 2 }

func (c *Cell) Dead() bool { return c.Size <= 0 }

// View is the read-only projection handed to renderers.
type View struct {
	ID          uuid.UUID
	Pos         physics.Vec2
	Size        float64
	Heading     float64
	Kills       int
	Name        string
	Color       string
	Phrase      string
	PhraseTimer float64
}

func (c *Cell) View() View {
	return View{
		ID:          c.ID,
		Pos:         c.Pos,
		Size:        c.Size,
		Heading:     c.Heading,
		Kills:       c.Kills,
		Name:        c.Name,
		Color:       c.Color,
		Phrase:      c.Phrase,
		PhraseTimer: c.PhraseTimer,
	}
}

func clampSize(size float64) float64 {
	if size < 0 || math.IsNaN(size) {
		return 0
	}
	return size
}
