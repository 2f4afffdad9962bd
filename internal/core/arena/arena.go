// Package arena describes the rectangular space cells live in.
package arena

import (
	"math"

	"github.com/zeusync/cellarena/internal/core/random"
	"github.com/zeusync/cellarena/internal/core/systems/physics"
)

// Arena spans [0,Width]×[0,Height].
type Arena struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func New(width, height float64) Arena {
	return Arena{Width: width, Height: height}
}

// ContainsCircle reports whether a circle of the given radius centred at p lies
// fully inside the arena.
func (a Arena) ContainsCircle(p physics.Vec2, radius float64) bool {
	return p.X-radius >= 0 && p.X+radius <= a.Width &&
		p.Y-radius >= 0 && p.Y+radius <= a.Height
}

// ClampCircle moves p the least distance needed to keep the circle inside.
// A circle wider than an axis is centred on that axis.
func (a Arena) ClampCircle(p physics.Vec2, radius float64) physics.Vec2 {
	return physics.Vec2{
		X: clampAxis(p.X, radius, a.Width),
		Y: clampAxis(p.Y, radius, a.Height),
	}
}

func clampAxis(v, radius, extent float64) float64 {
	if 2*radius >= extent {
		return extent / 2
	}
	return math.Min(math.Max(v, radius), extent-radius)
}

// RandomInterior returns a point at least padding away from every edge, on
// whole units. If the arena is too small for the padding, the centre is used.
func (a Arena) RandomInterior(src random.Source, padding float64) physics.Vec2 {
	return physics.Vec2{
		X: paddedAxis(src, a.Width, padding),
		Y: paddedAxis(src, a.Height, padding),
	}
}

func paddedAxis(src random.Source, extent, padding float64) float64 {
	span := extent - 2*padding
	if span <= 0 {
		return extent / 2
	}
	return padding + math.Floor(src.Float64()*span)
}

// OutOfBounds reports whether p lies more than margin outside the arena on
// either axis.
func (a Arena) OutOfBounds(p physics.Vec2, margin float64) bool {
	return p.X < -margin || p.X > a.Width+margin ||
		p.Y < -margin || p.Y > a.Height+margin
}
