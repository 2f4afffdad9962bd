package cell

import (
	"github.com/zeusync/cellarena/internal/core/random"
	"github.com/zeusync/cellarena/internal/core/systems/physics"
)

// Reaction is the outcome of React.
type Reaction uint8

const (
	ReactionNone Reaction = iota
	ReactionEscape
	ReactionAttack
	// ReactionCooldown means the cell wanted to turn but its timer was running.
	ReactionCooldown
)

func (r Reaction) String() string {
	switch r {
	case ReactionEscape:
		return "escape"
	case ReactionAttack:
		return "attack"
	case ReactionCooldown:
		return "cooldown"
	default:
		return "none"
	}
}

// CanReact reports whether the cell is big enough to take part in the
// interaction and collision passes as the acting cell.
func (c *Cell) CanReact(t Tuning) bool {
	return c.Size > t.MinReactSize
}

// CollisionImminent uses the sum of full sizes, a zone twice as wide as the
// contact test in Colliding.
func (c *Cell) CollisionImminent(other *Cell) bool {
	return c.Pos.DistanceTo(other.Pos) < c.Size+other.Size
}

// React nudges the heading when other is close. A smaller cell facing a
// non-trivial threat turns away; anything else, equal sizes included, turns
// towards other. Each turn is gated by its own cooldown.
func (c *Cell) React(other *Cell, t Tuning, src random.Source) Reaction {
	if c == other || !c.CollisionImminent(other) {
		return ReactionNone
	}

	jitter := random.Jitter(src, t.TurnJitter)
	if c.Size < other.Size && other.Size > t.ThreatFloor {
		if c.EscapeCooldown > 0 {
			return ReactionCooldown
		}
		c.Heading = physics.NormalizeHeading(c.Heading + 180 + jitter)
		c.EscapeCooldown = t.EscapeDelay
		return ReactionEscape
	}

	if c.AttackCooldown > 0 {
		return ReactionCooldown
	}
	c.Heading = physics.NormalizeHeading(physics.HeadingTo(c.Pos, other.Pos) + jitter)
	c.AttackCooldown = t.AttackDelay
	return ReactionAttack
}
