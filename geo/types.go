package geo

import "fmt"

// Vec2 is a point (or a displacement) in the plane. Every function in this
// package treats it as an immutable value.
type Vec2 struct {
	X float64
	Y float64
}

// A Node is a map vertex. IDs are opaque; the empty string never names a node,
// which lets "" stand for "no active node" wherever an active ID is taken.
type Node struct {
	ID  string
	Loc Vec2
}

// Edge describes the point on a polyline nearest to some query point. Index is
// the position, in the input node list, of the second endpoint of the winning
// segment, so it is always at least 1.
type Edge struct {
	Index    int
	Distance float64
	Loc      Vec2
}

// Segments are never stored, they are built from adjacent nodes or path points
// for the duration of a call.
type Segment [2]Vec2

// A Path is an ordered list of points. A polygon is a path whose closure is up
// to the caller; see PointInPolygon for how an implicit closing edge is handled.
type Path []Vec2

// Projection maps model coordinates into the working (usually screen) space
// that all geometry here is computed in. Invert maps back, and is expected to
// satisfy Invert(Project(p)) ≈ p.
type Projection interface {
	Project(Vec2) Vec2
	Invert(Vec2) Vec2
}

type identity struct{}

func (identity) Project(p Vec2) Vec2 { return p }
func (identity) Invert(p Vec2) Vec2  { return p }

// Identity is the projection that leaves coordinates untouched.
var Identity Projection = identity{}

// Transform is a uniform scale by K followed by a translation by (X, Y). This
// is the zoom/pan transform an editor applies on top of its map projection.
type Transform struct {
	K    float64
	X, Y float64
}

func (t Transform) Project(p Vec2) Vec2 {
	return Vec2{p.X*t.K + t.X, p.Y*t.K + t.Y}
}

// Invert undoes Project. A transform with K == 0 is not invertible and yields
// non-finite coordinates.
func (t Transform) Invert(p Vec2) Vec2 {
	return Vec2{(p.X - t.X) / t.K, (p.Y - t.Y) / t.K}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

func (n Node) String() string {
	return fmt.Sprintf("%s@%s", n.ID, n.Loc)
}

func (e Edge) String() string {
	return fmt.Sprintf("edge #%d at %s (distance %g)", e.Index, e.Loc, e.Distance)
}
