package geo

// Padding holds the width of the band along each side of the viewport.
type Padding struct {
	Top, Right, Bottom, Left float64
}

var viewportPadding = Padding{Top: 80, Right: 20, Bottom: 50, Left: 20}

// ViewportPadding returns the band, in pixels, inside which ViewportEdge
// nudges. The top is wider to clear the editor's toolbar.
func ViewportPadding() Padding {
	return viewportPadding
}

// nudge is the size of one autoscroll step.
const nudge = 10

// ViewportEdge returns the vector to nudge the viewport by when point is
// inside the padded band at the edge of a viewport of the given dimensions.
// Each axis is decided on its own, so a corner nudges diagonally. The second
// result is false when point is clear of every band.
func ViewportEdge(point, dimensions Vec2) (Vec2, bool) {
	pad := viewportPadding
	var v Vec2

	if point.X > dimensions.X-pad.Right {
		v.X = -nudge
	}
	if point.X < pad.Left {
		v.X = nudge
	}
	if point.Y > dimensions.Y-pad.Bottom {
		v.Y = -nudge
	}
	if point.Y < pad.Top {
		v.Y = nudge
	}

	if v.X == 0 && v.Y == 0 {
		return Vec2{}, false
	}
	return v, true
}
