package polyio

import (
	"encoding/json"
	"io"
	"io/ioutil"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"

	"github.com/NopMap/iD/geo"
)

// ReadGeoJSON reads a FeatureCollection, a single Feature or a bare geometry.
// Each line string and each polygon ring becomes one path; rings keep the
// explicit closing point GeoJSON requires. Longitude maps to X and latitude
// to Y, no projection is applied.
func ReadGeoJSON(r io.Reader) ([]geo.Path, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading geojson")
	}

	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, errors.Wrap(err, "parsing geojson")
	}

	var geometries []orb.Geometry
	switch probe.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, errors.Wrap(err, "parsing feature collection")
		}
		for _, f := range fc.Features {
			geometries = append(geometries, f.Geometry)
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, errors.Wrap(err, "parsing feature")
		}
		geometries = append(geometries, f.Geometry)
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing geometry of type %q", probe.Type)
		}
		geometries = append(geometries, g.Geometry())
	}

	var paths []geo.Path
	for _, g := range geometries {
		paths = appendGeometry(paths, g)
	}
	if len(paths) == 0 {
		return nil, errors.New("no geometries found")
	}
	return paths, nil
}

func appendGeometry(paths []geo.Path, g orb.Geometry) []geo.Path {
	switch g := g.(type) {
	case orb.Point:
		paths = append(paths, geo.Path{toVec2(g)})
	case orb.MultiPoint:
		paths = append(paths, pointsToPath(g))
	case orb.LineString:
		paths = append(paths, pointsToPath(g))
	case orb.Ring:
		paths = append(paths, pointsToPath(g))
	case orb.MultiLineString:
		for _, ls := range g {
			paths = append(paths, pointsToPath(ls))
		}
	case orb.Polygon:
		for _, ring := range g {
			paths = append(paths, pointsToPath(ring))
		}
	case orb.MultiPolygon:
		for _, polygon := range g {
			paths = appendGeometry(paths, polygon)
		}
	case orb.Collection:
		for _, child := range g {
			paths = appendGeometry(paths, child)
		}
	}
	return paths
}

func pointsToPath(points []orb.Point) geo.Path {
	path := make(geo.Path, len(points))
	for i, p := range points {
		path[i] = toVec2(p)
	}
	return path
}

func toVec2(p orb.Point) geo.Vec2 {
	return geo.Vec2{X: p.X(), Y: p.Y()}
}
