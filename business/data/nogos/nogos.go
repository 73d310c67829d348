// Package nogos maintains the exclusion zone store backed by the nogos.csv
// flat file. A zone is a circular area the routing tool must keep a shape out
// of; every trip sharing a shape id inherits its zones.
package nogos

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ColumbiaCountyTransit/gtfsgen/business/data/gtfs"
	"github.com/ColumbiaCountyTransit/gtfsgen/foundation/tablefile"
)

// Zone is one circular exclusion area for a shape
type Zone struct {
	ShapeId      string
	Lat          float64
	Lon          float64
	RadiusMeters float64
}

// Store holds all zones in file row order
type Store struct {
	zones []Zone
}

// Load reads the store from the csv file at path. A missing file is an empty
// store, since zones only exist once a route has been reconciled with them.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return &Store{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening exclusion zone store: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Read(f, path)
}

// Read reads the store from r. filename is used in error messages.
func Read(r io.Reader, filename string) (*Store, error) {
	parser, err := tablefile.MakeParser(r, filename)
	if err != nil {
		return nil, err
	}
	store := &Store{}
	for {
		err = parser.NextLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		zone := Zone{
			ShapeId:      parser.GetString("shape_id", false),
			Lat:          parser.GetFloat64("lat", false),
			Lon:          parser.GetFloat64("lon", false),
			RadiusMeters: parser.GetFloat64("radius_m", false),
		}
		if err = parser.Err(); err != nil {
			return nil, fmt.Errorf("%v: %w", err, gtfs.ErrInvalidInput)
		}
		if zone.RadiusMeters <= 0 {
			return nil, fmt.Errorf("in file %v, line %v: zone radius must be positive: %w",
				filename, parser.Line(), gtfs.ErrInvalidInput)
		}
		store.zones = append(store.zones, zone)
	}
	return store, nil
}

// ForShape returns the zones stored for shapeId in stored order
func (s *Store) ForShape(shapeId string) []Zone {
	var result []Zone
	for _, zone := range s.zones {
		if zone.ShapeId == shapeId {
			result = append(result, zone)
		}
	}
	return result
}

// ReplaceForShape replaces every zone stored for shapeId with zones, leaving
// other shapes untouched. An empty zones slice clears the shape. The routing
// tool's current state is authoritative, so this is a full replacement rather
// than a merge.
func (s *Store) ReplaceForShape(shapeId string, zones []Zone) {
	kept := make([]Zone, 0, len(s.zones)+len(zones))
	for _, zone := range s.zones {
		if zone.ShapeId != shapeId {
			kept = append(kept, zone)
		}
	}
	for _, zone := range zones {
		zone.ShapeId = shapeId
		kept = append(kept, zone)
	}
	s.zones = kept
}

// Len returns the number of zones across all shapes
func (s *Store) Len() int {
	return len(s.zones)
}

// Save rewrites the store file at path, replacing it atomically
func (s *Store) Save(path string) error {
	return tablefile.WriteAtomic(path, s.Write)
}

// Write emits the store as csv to w
func (s *Store) Write(w io.Writer) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write([]string{"shape_id", "lat", "lon", "radius_m"}); err != nil {
		return err
	}
	for _, zone := range s.zones {
		record := []string{
			zone.ShapeId,
			strconv.FormatFloat(zone.Lat, 'f', -1, 64),
			strconv.FormatFloat(zone.Lon, 'f', -1, 64),
			strconv.FormatFloat(zone.RadiusMeters, 'f', -1, 64),
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}
