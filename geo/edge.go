package geo

import "math"

// ChooseEdge finds the segment of the polyline through nodes that lies closest
// to point. The distance to a segment is measured to the orthogonal projection
// of point onto it when that projection falls inside the segment, and to the
// nearer endpoint otherwise.
//
// point must already be in projected space. Segments touching activeID are
// skipped, which is how a dragged node avoids snapping to its own edges. On a
// tie the earlier segment wins. The returned Loc is converted back to model
// space with proj.Invert. The result is nil when no segment is eligible.
func ChooseEdge(nodes []Node, point Vec2, proj Projection, activeID string) *Edge {
	points := make([]Vec2, len(nodes))
	for i, n := range nodes {
		points[i] = proj.Project(n.Loc)
	}

	min := math.Inf(1)
	idx := -1
	var nearest Vec2

	for i := 0; i < len(points)-1; i++ {
		if activeID != "" && (nodes[i].ID == activeID || nodes[i+1].ID == activeID) {
			continue
		}

		o := points[i]
		s := points[i+1].Sub(o)
		p := o
		// A zero-length segment has no projection parameter, only its endpoint.
		if ss := s.Dot(s); ss != 0 {
			t := point.Sub(o).Dot(s) / ss
			if t > 1 {
				p = points[i+1]
			} else if t >= 0 {
				p = Vec2{o.X + t*s.X, o.Y + t*s.Y}
			}
		}

		if d := Length(p, point); d < min {
			min = d
			idx = i + 1
			nearest = p
		}
	}

	if idx < 0 {
		return nil
	}
	return &Edge{Index: idx, Distance: min, Loc: proj.Invert(nearest)}
}
