package cell

import (
	"math"

	"github.com/google/uuid"

	"github.com/zeusync/cellarena/internal/core/random"
	"github.com/zeusync/cellarena/internal/core/systems/physics"
)

// scriptedSource replays fixed Float64 draws and then returns 0.5, which maps
// to zero jitter and a lost coin flip.
type scriptedSource struct {
	values []float64
	next   int
}

func script(values ...float64) *scriptedSource {
	return &scriptedSource{values: values}
}

func (s *scriptedSource) Float64() float64 {
	if s.next >= len(s.values) {
		return 0.5
	}
	v := s.values[s.next]
	s.next++
	return v
}

func (s *scriptedSource) Intn(int) int { return 0 }

func (s *scriptedSource) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

type fixedPhrase string

func (f fixedPhrase) Phrase(random.Source) string {
	return string(f)
}

// headingDelta is the smallest absolute difference between two headings.
func headingDelta(a, b float64) float64 {
	d := math.Abs(physics.NormalizeHeading(a) - physics.NormalizeHeading(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

func at(x, y, size float64) *Cell {
	return New(uuid.New(), physics.Vec2{X: x, Y: y}, size, 0, "test", "#00ffff")
}
