package simulation

import (
	"github.com/google/uuid"

	"github.com/zeusync/cellarena/internal/core/cell"
	"github.com/zeusync/cellarena/internal/core/random"
	"github.com/zeusync/cellarena/internal/core/systems/physics"
)

// quietConfig starts empty and never spawns, so tests control the population.
func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.StartingCells = 0
	cfg.MaxCells = 0
	return cfg
}

// smallConfig is a scaled-down default world for whole-run tests.
func smallConfig(seed int64) Config {
	cfg := DefaultConfig()
	cfg.Seed = seed
	cfg.Arena.Width, cfg.Arena.Height = 400, 300
	cfg.StartingCells = 80
	cfg.MaxCells = 150
	cfg.SpawnBatch = 10
	return cfg
}

// scriptedSource replays fixed Float64 draws and then returns 0.5.
type scriptedSource struct {
	values []float64
	next   int
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

var _ random.Source = (*scriptedSource)(nil)

type fixedPhrase string

func (f fixedPhrase) Phrase(random.Source) string { return string(f) }

func newCell(name string, x, y, size float64) *cell.Cell {
	return cell.New(uuid.New(), physics.Vec2{X: x, Y: y}, size, 0, name, "#00ffff")
}
