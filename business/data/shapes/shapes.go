// Package shapes reads route geometries from geojson files. Each shape id has
// one file named <shape_id>.geojson holding a single LineString feature.
package shapes

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ColumbiaCountyTransit/gtfsgen/business/data/gtfs"
)

// Point is one position on a shape in geojson lon, lat order
type Point struct {
	Lon float64
	Lat float64
}

type featureCollection struct {
	Features []struct {
		Geometry struct {
			Type        string      `json:"type"`
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// LineString returns the ordered points of the first feature's LineString
// geometry in the geojson file at path
func LineString(path string) ([]Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fc featureCollection
	if err = json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing %s: %v: %w", path, err, gtfs.ErrInvalidInput)
	}
	if len(fc.Features) == 0 {
		return nil, fmt.Errorf("no features in %s: %w", path, gtfs.ErrInvalidInput)
	}
	geometry := fc.Features[0].Geometry
	if geometry.Type != "LineString" {
		return nil, fmt.Errorf("expected LineString geometry in %s, found %q: %w",
			path, geometry.Type, gtfs.ErrInvalidInput)
	}
	points := make([]Point, 0, len(geometry.Coordinates))
	for i, position := range geometry.Coordinates {
		// geojson positions may carry altitude, ignore anything past lon and lat
		if len(position) < 2 {
			return nil, fmt.Errorf("position %d in %s is too short: %w", i, path, gtfs.ErrInvalidInput)
		}
		points = append(points, Point{Lon: position[0], Lat: position[1]})
	}
	if len(points) < 2 {
		return nil, fmt.Errorf("LineString in %s needs at least 2 points, found %d: %w",
			path, len(points), gtfs.ErrInvalidInput)
	}
	return points, nil
}

// File returns the geojson path for shapeId under dir. The filename stem is
// the shape id itself.
func File(dir, shapeId string) string {
	return filepath.Join(dir, shapeId+".geojson")
}
