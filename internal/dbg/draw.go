package dbg

import (
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"

	"github.com/NopMap/iD/geo"
)

// Padding around the shapes so that markers on the bounding box stay visible
const drawPadding = 20

// Drawing is what Draw renders: the shapes themselves, points of interest
// (crossings, query points) and optionally a nearest edge.
type Drawing struct {
	Paths  []geo.Path
	Closed bool // stroke each path as a closed ring
	Marks  []geo.Vec2
	Edge   *geo.Edge
	Query  *geo.Vec2
}

func (d Drawing) bounds() (min, max geo.Vec2) {
	min = geo.Vec2{X: math.Inf(1), Y: math.Inf(1)}
	max = geo.Vec2{X: math.Inf(-1), Y: math.Inf(-1)}
	extend := func(p geo.Vec2) {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	for _, path := range d.Paths {
		for _, p := range path {
			extend(p)
		}
	}
	for _, p := range d.Marks {
		extend(p)
	}
	if d.Query != nil {
		extend(*d.Query)
	}
	return min, max
}

// Draw renders d as a PNG to w, scaling model units by scale. The Y axis points
// up in the image.
func Draw(w io.Writer, d Drawing, scale float64) error {
	min, max := d.bounds()
	if math.IsInf(min.X, 1) {
		return errors.New("nothing to draw")
	}

	// Set up the context
	width := int(scale*(max.X-min.X)) + drawPadding*2
	height := int(scale*(max.Y-min.Y)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-min.X, -min.Y)

	c.SetLineWidth(2)
	for _, path := range d.Paths {
		if len(path) == 0 {
			continue
		}
		c.MoveTo(path[0].X, path[0].Y)
		for _, p := range path[1:] {
			c.LineTo(p.X, p.Y)
		}
		if d.Closed {
			c.ClosePath()
		}
	}
	if d.Closed {
		c.SetRGB(0, 0.5, 0)
		c.FillPreserve()
	}
	c.SetRGB(0, 1, 1)
	c.Stroke()

	// Markers keep a fixed size on screen whatever the scale
	r := 4 / scale
	c.SetRGB(1, 0, 0)
	for _, p := range d.Marks {
		c.DrawCircle(p.X, p.Y, r)
		c.Fill()
	}
	if d.Query != nil {
		c.SetRGB(1, 1, 0)
		c.DrawCircle(d.Query.X, d.Query.Y, r)
		c.Fill()
		if d.Edge != nil {
			c.DrawLine(d.Query.X, d.Query.Y, d.Edge.Loc.X, d.Edge.Loc.Y)
			c.Stroke()
		}
	}

	return errors.Wrap(c.EncodePNG(w), "encoding png")
}

// DrawFile renders d into the named PNG file, and prints it to the terminal
// (iTerm only) when preview is set.
func DrawFile(filename string, d Drawing, scale float64, preview bool) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "creating image")
	}
	if err := Draw(f, d, scale); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "writing image")
	}

	if preview {
		imgcat.CatFile(filename, os.Stdout)
	}
	return nil
}
