package geo

import "math"

// Vector primitives. Everything else in the package is built on these.

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v−o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Length returns the euclidean distance between a and b.
func Length(a, b Vec2) float64 {
	x := a.X - b.X
	y := a.Y - b.Y
	return math.Sqrt(x*x + y*y)
}

// Interp linearly interpolates from a (t = 0) to b (t = 1).
func Interp(a, b Vec2, t float64) Vec2 {
	return Vec2{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// VecAngle returns the angle of the directed line from a to b, measured
// counterclockwise from the positive X axis. This is atan2, so the result is
// in (-π, π], and 0 when a == b.
func VecAngle(a, b Vec2) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// VecEqual reports whether a and b are exactly equal.
func VecEqual(a, b Vec2) bool {
	return a.X == b.X && a.Y == b.Y
}

// VecEqualEpsilon reports whether each coordinate of a is within epsilon of the
// matching coordinate of b. The tolerance is absolute.
func VecEqualEpsilon(a, b Vec2, epsilon float64) bool {
	return math.Abs(a.X-b.X) <= epsilon && math.Abs(a.Y-b.Y) <= epsilon
}

// Often we want to treat a slice as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
