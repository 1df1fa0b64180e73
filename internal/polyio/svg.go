package polyio

import (
	"io"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"

	"github.com/NopMap/iD/geo"
)

// This is not a full (or even correct) SVG reader. It only looks at the
// points attribute of <polygon> and <polyline> elements, in document order
// with all polygons before all polylines. Polygons are returned closed, with
// the first point repeated at the end, so that they can be handed to the
// segment based functions as well as to PointInPolygon.

// ReadSVG returns every polygon and polyline in an SVG document.
func ReadSVG(r io.Reader) ([]geo.Path, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var paths []geo.Path
	for _, name := range []string{"polygon", "polyline"} {
		for _, el := range root.FindAll(name) {
			path, err := parseSVGPoints(el.Attributes["points"])
			if err != nil {
				return nil, errors.Wrapf(err, "<%s id=%q>", name, el.Attributes["id"])
			}
			if name == "polygon" && len(path) > 0 && !geo.VecEqual(path[0], path[len(path)-1]) {
				path = append(path, path[0])
			}
			paths = append(paths, path)
		}
	}
	if len(paths) == 0 {
		return nil, errors.New("no polygons or polylines found")
	}
	return paths, nil
}

// SVG allows commas and any whitespace between coordinates, so "1,2 3,4" and
// "1 2, 3 4" are the same list.
func parseSVGPoints(s string) (geo.Path, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", s)
	}

	path := make(geo.Path, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		point, err := parsePoint(fields[i : i+2])
		if err != nil {
			return nil, err
		}
		path = append(path, point)
	}
	return path, nil
}
