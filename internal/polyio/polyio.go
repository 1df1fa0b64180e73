// Package polyio reads shapes for the geometry toolkit from the formats an
// editor or a test is likely to hand us: plain "x y" text, SVG and GeoJSON.
package polyio

import (
	"bufio"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/NopMap/iD/geo"
)

type Format string

const (
	Text    Format = "text"
	SVG     Format = "svg"
	GeoJSON Format = "geojson"
)

// Formats lists every format Read accepts.
var Formats = []Format{Text, SVG, GeoJSON}

// FormatFromPath guesses the format from a file extension, falling back to
// Text.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return SVG
	case ".geojson", ".json":
		return GeoJSON
	}
	return Text
}

// Read parses every shape in r according to format.
func Read(r io.Reader, format Format) ([]geo.Path, error) {
	switch format {
	case Text:
		return ReadPoints(r)
	case SVG:
		return ReadSVG(r)
	case GeoJSON:
		return ReadGeoJSON(r)
	}
	return nil, errors.Errorf("unknown format %q", format)
}

// ReadPoints reads newline separated points in the form "x y", with shapes
// separated by an extra newline. Lines starting with # are ignored.
func ReadPoints(r io.Reader) ([]geo.Path, error) {
	var paths []geo.Path
	var path geo.Path
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the shape
		if line == "" {
			if len(path) > 0 {
				paths = append(paths, path)
				path = nil
			}
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(strings.Fields(line))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		path = append(path, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}

	// Handle trailing shape if any
	if len(path) > 0 {
		paths = append(paths, path)
	}
	return paths, nil
}

func parsePoint(parts []string) (geo.Vec2, error) {
	if len(parts) != 2 {
		return geo.Vec2{}, errors.Errorf("expected 2 coordinates, got %d", len(parts))
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return geo.Vec2{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return geo.Vec2{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return geo.Vec2{X: x, Y: y}, nil
}
