package main

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/logrusorgru/aurora"

	"github.com/NopMap/iD/geo"
	"github.com/NopMap/iD/internal/dbg"
)

// checker runs the toolkit over the shapes read from the input and reports
// the results, one line per finding.
type checker struct {
	out    io.Writer
	au     aurora.Aurora
	shapes []geo.Path
}

func (c *checker) name(i int) string {
	return c.au.Cyan(fmt.Sprintf("#%d %s", i, dbg.Name(&c.shapes[i]))).String()
}

func (c *checker) yesNo(b bool) string {
	if b {
		return c.au.Green("yes").String()
	}
	return c.au.Red("no").String()
}

func (c *checker) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// nodes gives every vertex of a shape its index as ID. A closing vertex
// shares the ID of the first, as it would in the editor's graph.
func nodes(path geo.Path) []geo.Node {
	result := make([]geo.Node, len(path))
	for i, p := range path {
		id := strconv.Itoa(i)
		if i > 0 && i == len(path)-1 && geo.VecEqual(p, path[0]) {
			id = result[0].ID
		}
		result[i] = geo.Node{ID: id, Loc: p}
	}
	return result
}

func (c *checker) length() {
	var total float64
	for i, shape := range c.shapes {
		l := geo.PathLength(shape)
		total += l
		c.printf("%s length %g", c.name(i), l)
	}
	c.printf("total length %g", total)
}

func (c *checker) angles() {
	for i, shape := range c.shapes {
		ns := nodes(shape)
		for j := 0; j < len(ns)-1; j++ {
			deg := geo.Angle(ns[j], ns[j+1], geo.Identity) * 180 / math.Pi
			c.printf("%s segment %d heading %.2f°", c.name(i), j+1, deg)
		}
	}
}

func (c *checker) contains() {
	for i := 1; i < len(c.shapes); i++ {
		c.printf("%s contains %s: %s", c.name(0), c.name(i),
			c.yesNo(geo.PolygonContainsPolygon(c.shapes[0], c.shapes[i])))
	}
}

func (c *checker) intersects(checkSegments bool) {
	for i := 1; i < len(c.shapes); i++ {
		c.printf("%s intersects %s: %s", c.name(0), c.name(i),
			c.yesNo(geo.PolygonIntersectsPolygon(c.shapes[0], c.shapes[i], checkSegments)))
	}
}

// crossings returns every crossing between every pair of shapes.
func (c *checker) crossings() []geo.Vec2 {
	var all []geo.Vec2
	for i := 0; i < len(c.shapes); i++ {
		for j := i + 1; j < len(c.shapes); j++ {
			hits := geo.PathIntersections(c.shapes[i], c.shapes[j])
			for _, hit := range hits {
				c.printf("%s crosses %s at %s", c.name(i), c.name(j), hit)
			}
			all = append(all, hits...)
		}
	}
	c.printf("%d crossings", len(all))
	return all
}

// self reports, for each shape, the vertices whose adjoining segments cross
// another segment of the same shape.
func (c *checker) self() {
	for i, shape := range c.shapes {
		ns := nodes(shape)
		var crossing []string
		seen := make(map[string]bool)
		for _, n := range ns {
			if seen[n.ID] {
				continue
			}
			seen[n.ID] = true
			if geo.HasSelfIntersections(ns, n.ID) {
				crossing = append(crossing, n.ID)
			}
		}
		if len(crossing) == 0 {
			c.printf("%s crosses itself: %s", c.name(i), c.yesNo(false))
		} else {
			c.printf("%s crosses itself: %s, at vertices %v", c.name(i), c.yesNo(true), crossing)
		}
	}
}

// rings reports which vertices of each shape would make it cross another
// shape if they were the one being dragged.
func (c *checker) rings() {
	for i := range c.shapes {
		active := nodes(c.shapes[i])
		for j := range c.shapes {
			if i == j {
				continue
			}
			inactive := nodes(c.shapes[j])
			var crossing []string
			seen := make(map[string]bool)
			for _, n := range active {
				if !seen[n.ID] && geo.HasLineIntersections(active, inactive, n.ID) {
					crossing = append(crossing, n.ID)
				}
				seen[n.ID] = true
			}
			if len(crossing) > 0 {
				c.printf("%s crosses %s at vertices %v", c.name(i), c.name(j), crossing)
			}
		}
	}
}

// nearest finds the edge closest to a query point given in projected space
// over all shapes, and returns it along with the shape it belongs to (-1 if
// there is none).
func (c *checker) nearest(query geo.Vec2, proj geo.Projection) (int, *geo.Edge) {
	best := -1
	var edge *geo.Edge
	for i, shape := range c.shapes {
		e := geo.ChooseEdge(nodes(shape), query, proj, "")
		if e == nil {
			continue
		}
		c.printf("%s nearest %s", c.name(i), e)
		if edge == nil || e.Distance < edge.Distance {
			best, edge = i, e
		}
	}
	if edge == nil {
		c.printf("no edges")
	} else {
		c.printf("closest is %s segment %d", c.name(best), edge.Index)
	}
	return best, edge
}

func (c *checker) inside(point geo.Vec2) {
	for i, shape := range c.shapes {
		c.printf("%s contains %s: %s", c.name(i), point, c.yesNo(geo.PointInPolygon(point, shape)))
	}
}

func (c *checker) nudge(point, dimensions geo.Vec2) {
	if v, ok := geo.ViewportEdge(point, dimensions); ok {
		c.printf("nudge %s", v)
	} else {
		c.printf("no nudge")
	}
}

// rotate prints the rotated shapes in the text input format, so the output
// can be fed back in. Coordinates are rounded to ten significant digits to
// hide the noise sin and cos leave behind.
func (c *checker) rotate(degrees float64, around geo.Vec2) {
	for i, shape := range c.shapes {
		if i > 0 {
			c.printf("")
		}
		for _, p := range geo.Rotate(shape, degrees*math.Pi/180, around) {
			c.printf("%.10g %.10g", p.X, p.Y)
		}
	}
}
