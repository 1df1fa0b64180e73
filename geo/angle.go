package geo

import "math"

// Angle returns the counterclockwise angle between the positive X axis and the
// line from a to b, after both have been projected. When a and b project to
// the same point the result is 0, but callers should not depend on that.
func Angle(a, b Node, proj Projection) float64 {
	return VecAngle(proj.Project(a.Loc), proj.Project(b.Loc))
}

// Rotate rotates every point counterclockwise by angle radians around the
// pivot. The input is left untouched and the result has the same order.
func Rotate(points []Vec2, angle float64, around Vec2) []Vec2 {
	sin, cos := math.Sincos(angle)
	result := make([]Vec2, len(points))
	for i, point := range points {
		radial := point.Sub(around)
		result[i] = Vec2{
			X: radial.X*cos - radial.Y*sin + around.X,
			Y: radial.X*sin + radial.Y*cos + around.Y,
		}
	}
	return result
}

// EdgeEqual reports whether two edges, given as pairs of node IDs, join the
// same two nodes in either direction.
func EdgeEqual(a, b [2]string) bool {
	return (a[0] == b[0] && a[1] == b[1]) ||
		(a[0] == b[1] && a[1] == b[0])
}
