package physics

import "math"

// Lightweight 2D helpers shared by the arena and cell kinematics.
// Headings are in degrees, measured from +X towards +Y (screen coordinates).

type Vec2 struct{ X, Y float64 }

func (v Vec2) Add(o Vec2) Vec2           { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2           { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) DistanceTo(o Vec2) float64 { return Distance2(v.X, v.Y, o.X, o.Y) }

// Distance2 computes Euclidean distance between two 2D points.
func Distance2(x1, y1, x2, y2 float64) float64 { return math.Hypot(x2-x1, y2-y1) }

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// NormalizeHeading folds any angle in degrees into [0, 360).
func NormalizeHeading(deg float64) float64 {
	h := math.Mod(deg, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// Project returns the displacement of travelling distance along heading.
func Project(heading, distance float64) Vec2 {
	r := Radians(heading)
	return Vec2{math.Cos(r) * distance, math.Sin(r) * distance}
}

// HeadingTo returns the heading in degrees pointing from one point at another.
// The result is in (-180, 180]; callers normalise when they store it.
func HeadingTo(from, to Vec2) float64 {
	d := to.Sub(from)
	return Degrees(math.Atan2(d.Y, d.X))
}
