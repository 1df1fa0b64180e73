package main

import (
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/NopMap/iD/geo"
	"github.com/NopMap/iD/internal/dbg"
	"github.com/NopMap/iD/internal/polyio"
)

// Command line front end for the geometry toolkit. Shapes are read from a
// file or stdin: plain text is newline separated points in the form "x y",
// with each shape separated by an extra newline; SVG polygons and polylines
// and GeoJSON geometries are read too.

var (
	app = kingpin.New("geocheck", "Run map editor geometry checks over a set of shapes.")

	input   = app.Flag("input", "File to read shapes from, - for stdin.").Short('i').Default("-").Envar("GEOCHECK_INPUT").String()
	format  = app.Flag("format", "Input format, guessed from the file extension when unset.").Short('f').Envar("GEOCHECK_FORMAT").Enum("text", "svg", "geojson")
	noColor = app.Flag("no-color", "Disable colored output.").Envar("GEOCHECK_NO_COLOR").Bool()

	lengthCmd = app.Command("length", "Print the length of every shape.")
	angleCmd  = app.Command("angle", "Print the heading of every segment.")

	containsCmd   = app.Command("contains", "Check whether the first shape contains each of the others.")
	intersectsCmd = app.Command("intersects", "Check whether the first shape intersects each of the others.")
	segments      = intersectsCmd.Flag("segments", "Also test for crossing edges.").Bool()

	crossingsCmd = app.Command("crossings", "List every point where two shapes cross.")
	selfCmd      = app.Command("self", "Find shapes that cross themselves.")
	ringsCmd     = app.Command("rings", "Find vertices whose edges cross another shape.")

	nearestCmd = app.Command("nearest", "Find the edge closest to a point in screen space.")
	nearestX   = nearestCmd.Arg("x", "X coordinate.").Required().Float64()
	nearestY   = nearestCmd.Arg("y", "Y coordinate.").Required().Float64()
	zoom       = nearestCmd.Flag("zoom", "Scale from shape to screen coordinates.").Default("1").Float64()
	panX       = nearestCmd.Flag("pan-x", "Screen X offset.").Default("0").Float64()
	panY       = nearestCmd.Flag("pan-y", "Screen Y offset.").Default("0").Float64()

	insideCmd = app.Command("inside", "Check which shapes contain a point.")
	insideX   = insideCmd.Arg("x", "X coordinate.").Required().Float64()
	insideY   = insideCmd.Arg("y", "Y coordinate.").Required().Float64()

	nudgeCmd = app.Command("nudge", "Compute the autoscroll nudge for a pointer position.")
	nudgeX   = nudgeCmd.Arg("x", "Pointer X.").Required().Float64()
	nudgeY   = nudgeCmd.Arg("y", "Pointer Y.").Required().Float64()
	width    = nudgeCmd.Flag("width", "Viewport width.").Default("800").Envar("GEOCHECK_VIEWPORT_WIDTH").Float64()
	height   = nudgeCmd.Flag("height", "Viewport height.").Default("600").Envar("GEOCHECK_VIEWPORT_HEIGHT").Float64()

	rotateCmd = app.Command("rotate", "Rotate every shape counterclockwise and print the result.")
	degrees   = rotateCmd.Arg("degrees", "Angle in degrees.").Required().Float64()
	aroundX   = rotateCmd.Flag("around-x", "Pivot X.").Default("0").Float64()
	aroundY   = rotateCmd.Flag("around-y", "Pivot Y.").Default("0").Float64()

	drawCmd = app.Command("draw", "Render the shapes and their crossings to a PNG.")
	drawOut = drawCmd.Arg("out", "PNG file to write.").Required().String()
	scale   = drawCmd.Flag("scale", "Pixels per unit.").Default("4").Envar("GEOCHECK_SCALE").Float64()
	closed  = drawCmd.Flag("closed", "Fill shapes as closed rings.").Bool()
	preview = drawCmd.Flag("preview", "Print the image to the terminal (iTerm only).").Envar("GEOCHECK_PREVIEW").Bool()
)

func main() {
	_ = godotenv.Load(".env")
	log.SetFlags(0)
	log.SetPrefix("geocheck: ")

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	shapes, err := readShapes(*input, *format)
	if err != nil {
		log.Fatalf("%v", err)
	}

	c := &checker{
		out:    os.Stdout,
		au:     aurora.NewAurora(!*noColor),
		shapes: shapes,
	}
	if err := run(c, command); err != nil {
		log.Fatalf("%v", err)
	}
}

func readShapes(path, format string) ([]geo.Path, error) {
	f := polyio.Format(format)
	if f == "" {
		f = polyio.FormatFromPath(path)
	}

	var r io.Reader = os.Stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer file.Close()
		r = file
	}

	shapes, err := polyio.Read(r, f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if len(shapes) == 0 {
		return nil, errors.Errorf("no shapes in %s", path)
	}
	return shapes, nil
}

func run(c *checker, command string) error {
	switch command {
	case lengthCmd.FullCommand():
		c.length()
	case angleCmd.FullCommand():
		c.angles()
	case containsCmd.FullCommand():
		c.contains()
	case intersectsCmd.FullCommand():
		c.intersects(*segments)
	case crossingsCmd.FullCommand():
		c.crossings()
	case selfCmd.FullCommand():
		c.self()
	case ringsCmd.FullCommand():
		c.rings()
	case nearestCmd.FullCommand():
		c.nearest(geo.Vec2{X: *nearestX, Y: *nearestY}, geo.Transform{K: *zoom, X: *panX, Y: *panY})
	case insideCmd.FullCommand():
		c.inside(geo.Vec2{X: *insideX, Y: *insideY})
	case nudgeCmd.FullCommand():
		c.nudge(geo.Vec2{X: *nudgeX, Y: *nudgeY}, geo.Vec2{X: *width, Y: *height})
	case rotateCmd.FullCommand():
		c.rotate(*degrees, geo.Vec2{X: *aroundX, Y: *aroundY})
	case drawCmd.FullCommand():
		d := dbg.Drawing{
			Paths:  c.shapes,
			Closed: *closed,
			Marks:  c.crossings(),
		}
		if err := dbg.DrawFile(*drawOut, d, *scale, *preview); err != nil {
			return err
		}
		c.printf("wrote %s", *drawOut)
	default:
		return errors.Errorf("unknown command %q", command)
	}
	return nil
}
