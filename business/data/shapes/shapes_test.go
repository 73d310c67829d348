package shapes

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ColumbiaCountyTransit/gtfsgen/business/data/gtfs"
)

const lineStringGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {},
      "geometry": {
        "type": "LineString",
        "coordinates": [
          [-73.7927, 42.2528],
          [-73.7851, 42.2521],
          [-73.7612, 42.2703, 120.5]
        ]
      }
    }
  ]
}`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLineString(t *testing.T) {
	path := writeFixture(t, "SHOPPING_LOOP.geojson", lineStringGeoJSON)
	points, err := LineString(path)
	if err != nil {
		t.Fatalf("LineString() error = %v", err)
	}
	want := []Point{
		{Lon: -73.7927, Lat: 42.2528},
		{Lon: -73.7851, Lat: 42.2521},
		{Lon: -73.7612, Lat: 42.2703}, // altitude dropped
	}
	if !reflect.DeepEqual(points, want) {
		t.Errorf("LineString() = %+v, want %+v", points, want)
	}
}

func TestLineStringErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "not json",
			content: "shape_id,lat\n",
		},
		{
			name:    "no features",
			content: `{"type": "FeatureCollection", "features": []}`,
		},
		{
			name: "point geometry",
			content: `{"type": "FeatureCollection", "features": [
				{"type": "Feature", "geometry": {"type": "Point", "coordinates": [-73.79, 42.25]}}]}`,
		},
		{
			name: "single point line",
			content: `{"type": "FeatureCollection", "features": [
				{"type": "Feature", "geometry": {"type": "LineString", "coordinates": [[-73.79, 42.25]]}}]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFixture(t, "bad.geojson", tt.content)
			_, err := LineString(path)
			if err == nil {
				t.Errorf("LineString() produced no error, but we want one")
				return
			}
			if !errors.Is(err, gtfs.ErrInvalidInput) {
				t.Errorf("LineString() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestLineStringMissingFile(t *testing.T) {
	_, err := LineString(filepath.Join(t.TempDir(), "MISSING.geojson"))
	if !os.IsNotExist(err) {
		t.Errorf("LineString() error = %v, want file-not-exist", err)
	}
}

func TestFile(t *testing.T) {
	if got := File("shapes", "SHOPPING_LOOP"); got != filepath.Join("shapes", "SHOPPING_LOOP.geojson") {
		t.Errorf("File() = %v", got)
	}
}
