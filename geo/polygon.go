package geo

// PointInPolygon reports whether point lies inside polygon, by the even-odd
// rule: a horizontal ray from point is cast and each polygon edge it crosses
// flips the answer.
//
// The last vertex is joined back to the first, so the ring does not need to be
// closed explicitly. If it is, the duplicated closing vertex adds a zero-height
// edge which never counts as a crossing, and the answer is the same.
func PointInPolygon(point Vec2, polygon Path) bool {
	x, y := point.X, point.Y
	inside := false

	for i, vi := range polygon {
		vj := polygon[CircularIndex(i-1, len(polygon))]
		if (vi.Y > y) != (vj.Y > y) &&
			x < (vj.X-vi.X)*(y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
	}
	return inside
}

// PolygonContainsPolygon reports whether every vertex of inner is inside
// outer. Only vertices are tested: a non-convex outer can still have inner's
// edges pass outside it.
func PolygonContainsPolygon(outer, inner Path) bool {
	for _, point := range inner {
		if !PointInPolygon(point, outer) {
			return false
		}
	}
	return true
}

// PolygonIntersectsPolygon reports whether any vertex of inner lies inside
// outer or, when checkSegments is set, whether any edges of the two cross.
func PolygonIntersectsPolygon(outer, inner Path, checkSegments bool) bool {
	for _, point := range inner {
		if PointInPolygon(point, outer) {
			return true
		}
	}
	return checkSegments && PathHasIntersections(outer, inner)
}

// PathLength returns the sum of the lengths of the path's segments. A path
// with fewer than two points has length 0.
func PathLength(path Path) float64 {
	var length float64
	for i := 0; i < len(path)-1; i++ {
		length += Length(path[i], path[i+1])
	}
	return length
}
