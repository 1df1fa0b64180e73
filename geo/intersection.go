package geo

// SelfIntersectionEpsilon is the absolute per-coordinate tolerance within which
// a crossing found by HasSelfIntersections is treated as landing on a segment
// endpoint, and therefore ignored.
const SelfIntersectionEpsilon = 1e-8

// LineIntersection returns the point where segments a and b cross.
//
// With a = p→p2 and b = q→q2, r = p2−p and s = q2−q, the segments meet at
// p + t·r = q + u·s. A hit is reported only when both t and u lie in [0, 1],
// so segments touching at an endpoint do intersect. Parallel segments, and
// segments where q lies on the line through a, report no intersection;
// collinear overlap is not detected.
func LineIntersection(a, b Segment) (Vec2, bool) {
	p, p2 := a[0], a[1]
	q, q2 := b[0], b[1]
	r := p2.Sub(p)
	s := q2.Sub(q)
	qp := q.Sub(p)

	uNumerator := qp.Cross(r)
	denominator := r.Cross(s)
	if uNumerator == 0 || denominator == 0 {
		return Vec2{}, false
	}

	u := uNumerator / denominator
	t := qp.Cross(s) / denominator
	if t >= 0 && t <= 1 && u >= 0 && u <= 1 {
		return Interp(p, p2, t), true
	}
	return Vec2{}, false
}

// segments splits the polyline through nodes into its consecutive segments.
// When activeID is set, the segments touching it are returned as active and
// the rest as inactive; otherwise everything is inactive.
func segments(nodes []Node, activeID string) (actives, inactives []Segment) {
	for i := 0; i < len(nodes)-1; i++ {
		n1, n2 := nodes[i], nodes[i+1]
		segment := Segment{n1.Loc, n2.Loc}
		if activeID != "" && (n1.ID == activeID || n2.ID == activeID) {
			actives = append(actives, segment)
		} else {
			inactives = append(inactives, segment)
		}
	}
	return actives, inactives
}

// HasLineIntersections tests the segments of activeNodes that touch activeID
// (the ones being dragged or drawn) against every segment of inactiveNodes.
// This catches e.g. multipolygon rings that cross each other.
func HasLineIntersections(activeNodes, inactiveNodes []Node, activeID string) bool {
	actives, _ := segments(activeNodes, activeID)
	if len(actives) == 0 {
		return false
	}
	_, inactives := segments(inactiveNodes, "")

	for _, p := range actives {
		for _, q := range inactives {
			if _, hit := LineIntersection(p, q); hit {
				return true
			}
		}
	}
	return false
}

// HasSelfIntersections reports whether the segments of a way touching activeID
// cross any of its other segments.
//
// Segment pairs sharing an endpoint are skipped outright. A crossing within
// SelfIntersectionEpsilon of any of the four endpoints is also ignored: that is
// a shared vertex seen through floating point error, not a real crossing.
func HasSelfIntersections(nodes []Node, activeID string) bool {
	actives, inactives := segments(nodes, activeID)

	for _, p := range actives {
		for _, q := range inactives {
			if VecEqual(p[1], q[0]) || VecEqual(p[0], q[1]) ||
				VecEqual(p[0], q[0]) || VecEqual(p[1], q[1]) {
				continue
			}

			hit, ok := LineIntersection(p, q)
			if !ok {
				continue
			}
			if VecEqualEpsilon(p[1], hit, SelfIntersectionEpsilon) ||
				VecEqualEpsilon(p[0], hit, SelfIntersectionEpsilon) ||
				VecEqualEpsilon(q[1], hit, SelfIntersectionEpsilon) ||
				VecEqualEpsilon(q[0], hit, SelfIntersectionEpsilon) {
				continue
			}
			return true
		}
	}
	return false
}

// PathIntersections returns every point where a segment of path1 crosses a
// segment of path2. Points come out in scan order, path1's segments in the
// outer loop, and are not deduplicated.
func PathIntersections(path1, path2 Path) []Vec2 {
	var intersections []Vec2
	for i := 0; i < len(path1)-1; i++ {
		for j := 0; j < len(path2)-1; j++ {
			a := Segment{path1[i], path1[i+1]}
			b := Segment{path2[j], path2[j+1]}
			if hit, ok := LineIntersection(a, b); ok {
				intersections = append(intersections, hit)
			}
		}
	}
	return intersections
}

// PathHasIntersections is PathIntersections that stops at the first hit.
func PathHasIntersections(path1, path2 Path) bool {
	for i := 0; i < len(path1)-1; i++ {
		for j := 0; j < len(path2)-1; j++ {
			a := Segment{path1[i], path1[i+1]}
			b := Segment{path2[j], path2[j+1]}
			if _, ok := LineIntersection(a, b); ok {
				return true
			}
		}
	}
	return false
}
