package cell

import (
	"math"

	"github.com/zeusync/cellarena/internal/core/arena"
	"github.com/zeusync/cellarena/internal/core/random"
	"github.com/zeusync/cellarena/internal/core/systems/physics"
)

// Speed is the size-driven speed law. Cells under size 1 are inert, cells at
// or above UberMaxSize move at MaxSpeed, and everything between slows down
// logarithmically with size on top of a MinSpeed floor.
func Speed(size float64, t Tuning, modifier float64) float64 {
	switch {
	case size < 1:
		return 0
	case size >= t.UberMaxSize:
		return t.MaxSpeed
	default:
		return t.SpeedCoefficient/math.Log(size+1)*modifier + t.MinSpeed
	}
}

// Advance moves the cell for dt milliseconds inside bounds and winds down its
// timers. A move that would push the circle past a wall turns the cell around
// (180° plus up to BounceJitter either way) and replays the move from the
// starting point along the new heading. The replayed position is then clamped
// so the whole circle lies inside the arena; a renderer never sees a bounced
// cell overlapping a wall. Cells at MaxSize with LeaveOnMaxSize set ignore
// the walls.
func (c *Cell) Advance(dt float64, bounds arena.Arena, t Tuning, modifier float64, src random.Source) {
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}

	c.Speed = Speed(c.Size, t, modifier)
	if dt == 0 {
		return
	}

	next := c.Pos.Add(physics.Project(c.Heading, c.Speed*dt))
	if !c.leaving(t) {
		radius := c.Radius()
		if !bounds.ContainsCircle(next, radius) {
			c.Heading = physics.NormalizeHeading(c.Heading + 180 + random.Jitter(src, t.BounceJitter))
			next = c.Pos.Add(physics.Project(c.Heading, c.Speed*dt))
			next = bounds.ClampCircle(next, radius)
		}
	}
	c.Pos = next

	c.EscapeCooldown = countdown(c.EscapeCooldown, dt)
	c.AttackCooldown = countdown(c.AttackCooldown, dt)
	c.PhraseTimer = countdown(c.PhraseTimer, dt)
	if c.PhraseTimer == 0 {
		c.Phrase = ""
	}
}

func (c *Cell) leaving(t Tuning) bool {
	return t.LeaveOnMaxSize && c.Size >= t.MaxSize
}

func countdown(v, dt float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Max(v-dt, 0)
}
