package cell

import (
	"github.com/zeusync/cellarena/internal/core/random"
)

// Role names a side of a collision.
type Role uint8

const (
	// NoWinner is the result of an equal-size collision whose coin flip did
	// not pick the acting cell. Nothing changes for that pair.
	NoWinner Role = iota
	RoleA
	RoleB
)

// Resolution describes a collision between A (the acting cell) and B.
type Resolution struct {
	Winner Role

	WinnerSize      float64
	LoserSize       float64
	LoserSizeBefore float64

	// Killed is set when the loser went from a positive size to 0 here.
	Killed bool

	// Phrase is filled by CollideWith when the winner speaks.
	Phrase string
}

func (r Resolution) Loser() Role {
	switch r.Winner {
	case RoleA:
		return RoleB
	case RoleB:
		return RoleA
	default:
		return NoWinner
	}
}

// Colliding is the contact test: centres closer than the sum of radii.
func Colliding(a, b *Cell) bool {
	return a != b && a.Pos.DistanceTo(b.Pos) < a.Radius()+b.Radius()
}

// ResolveCollision decides a collision from the two sizes alone. The larger
// size wins; on a tie a fair coin decides whether A wins, and if it does not
// the result is NoWinner. The winner gains GrowthFactor of the loser's size.
// A loser at or under KillFloor drops to 0, otherwise it is divided by
// ShrinkDivisor.
func ResolveCollision(aSize, bSize float64, t Tuning, src random.Source) Resolution {
	var winner, loser float64
	var res Resolution

	switch {
	case aSize > bSize:
		res.Winner, winner, loser = RoleA, aSize, bSize
	case aSize < bSize:
		res.Winner, winner, loser = RoleB, bSize, aSize
	default:
		if !random.Chance(src, 0.5) {
			return Resolution{Winner: NoWinner, WinnerSize: aSize, LoserSize: bSize, LoserSizeBefore: bSize}
		}
		res.Winner, winner, loser = RoleA, aSize, bSize
	}

	res.LoserSizeBefore = loser
	res.WinnerSize = clampSize(winner + loser*t.GrowthFactor)
	if loser <= t.KillFloor {
		res.LoserSize = 0
	} else {
		res.LoserSize = clampSize(loser / t.ShrinkDivisor)
	}
	res.Killed = res.LoserSizeBefore > 0 && res.LoserSize == 0

	return res
}

// CollideWith resolves contact between c and other and applies the result to
// both. Only c, the acting cell, collects kills and speaks; when other wins
// while c is acting, other's counter stays untouched.
func (c *Cell) CollideWith(other *Cell, t Tuning, src random.Source, phrases Phraser) (Resolution, bool) {
	if !Colliding(c, other) {
		return Resolution{}, false
	}

	res := ResolveCollision(c.Size, other.Size, t, src)
	if res.Winner == NoWinner {
		return res, true
	}

	winner, loser := c, other
	if res.Winner == RoleB {
		winner, loser = other, c
	}
	winner.Size = res.WinnerSize

	if random.Chance(src, t.PhraseChance) && res.LoserSizeBefore > t.PhraseMinLoserSize && res.Winner == RoleA {
		if random.Chance(src, t.ChattyChance) && winner.Size < t.ChattyMaxWinnerSize && phrases != nil {
			c.Phrase = phrases.Phrase(src)
			c.PhraseTimer = t.PhraseDuration
			res.Phrase = c.Phrase
		}
	}

	loser.Size = res.LoserSize

	if res.Killed && res.Winner == RoleA {
		c.Kills++
	}

	return res, true
}
