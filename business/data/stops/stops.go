// Package stops maintains the stop registry backed by the stops.csv flat file.
package stops

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid"

	"github.com/ColumbiaCountyTransit/gtfsgen/business/data/gtfs"
	"github.com/ColumbiaCountyTransit/gtfsgen/foundation/tablefile"
)

// Stop is one row of the registry. StopId may be blank on a freshly added row
// until AssignIds fills it in.
type Stop struct {
	StopId string
	Name   string  `validate:"required"`
	Lat    float64 `validate:"latitude"`
	Lon    float64 `validate:"longitude"`
}

// Registry holds the stop table in file row order with an index by stop id.
// Row order is preserved on save so edits diff cleanly.
type Registry struct {
	rows []*Stop
	byId map[string]*Stop
}

// Load reads the registry from the csv file at path
func Load(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening stop registry: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Read(f, path)
}

// Read reads the registry from r. filename is used in error messages.
func Read(r io.Reader, filename string) (*Registry, error) {
	parser, err := tablefile.MakeParser(r, filename)
	if err != nil {
		return nil, err
	}
	validate := validator.New()
	registry := &Registry{byId: make(map[string]*Stop)}
	for {
		err = parser.NextLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		stop := &Stop{
			StopId: parser.GetString("stop_id", true),
			Name:   parser.GetString("stop_name", false),
			Lat:    parser.GetFloat64("stop_lat", false),
			Lon:    parser.GetFloat64("stop_lon", false),
		}
		if err = parser.Err(); err != nil {
			return nil, fmt.Errorf("%v: %w", err, gtfs.ErrInvalidInput)
		}
		if err = validate.Struct(stop); err != nil {
			return nil, fmt.Errorf("in file %v, line %v, stop %q: %v: %w",
				filename, parser.Line(), stop.Name, err, gtfs.ErrInvalidInput)
		}
		if err = registry.add(stop); err != nil {
			return nil, fmt.Errorf("in file %v, line %v: %w", filename, parser.Line(), err)
		}
	}
	return registry, nil
}

func (r *Registry) add(stop *Stop) error {
	if stop.StopId != "" {
		if _, present := r.byId[stop.StopId]; present {
			return fmt.Errorf("duplicate stop_id %s: %w", stop.StopId, gtfs.ErrInvalidInput)
		}
		r.byId[stop.StopId] = stop
	}
	r.rows = append(r.rows, stop)
	return nil
}

// AssignIds fills every blank stop id with a fresh STOP-<uuid> token that does
// not collide with an existing id. Idempotent: rows that already carry an id
// are left alone. Returns the number of ids assigned.
func (r *Registry) AssignIds() (int, error) {
	assigned := 0
	for _, stop := range r.rows {
		if stop.StopId != "" {
			continue
		}
		for {
			token, err := uuid.NewV4()
			if err != nil {
				return assigned, fmt.Errorf("generating stop id: %w", err)
			}
			id := "STOP-" + token.String()
			if _, taken := r.byId[id]; taken {
				continue
			}
			stop.StopId = id
			r.byId[id] = stop
			break
		}
		assigned++
	}
	return assigned, nil
}

// Lookup retrieves the stop with stopId
func (r *Registry) Lookup(stopId string) (*Stop, error) {
	stop, present := r.byId[stopId]
	if !present {
		return nil, fmt.Errorf("stop %s: %w", stopId, gtfs.ErrNotFound)
	}
	return stop, nil
}

// UpdateCoordinates overwrites the stored position of the stop with stopId
func (r *Registry) UpdateCoordinates(stopId string, lat, lon float64) error {
	stop, err := r.Lookup(stopId)
	if err != nil {
		return err
	}
	stop.Lat = lat
	stop.Lon = lon
	return nil
}

// Stops returns the registry rows in file order
func (r *Registry) Stops() []Stop {
	result := make([]Stop, 0, len(r.rows))
	for _, stop := range r.rows {
		result = append(result, *stop)
	}
	return result
}

// Len returns the number of rows in the registry
func (r *Registry) Len() int {
	return len(r.rows)
}

// Save rewrites the registry file at path, replacing it atomically
func (r *Registry) Save(path string) error {
	return tablefile.WriteAtomic(path, r.Write)
}

// Write emits the registry as csv to w
func (r *Registry) Write(w io.Writer) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write([]string{"stop_id", "stop_name", "stop_lat", "stop_lon"}); err != nil {
		return err
	}
	for _, stop := range r.rows {
		record := []string{
			stop.StopId,
			stop.Name,
			strconv.FormatFloat(stop.Lat, 'f', -1, 64),
			strconv.FormatFloat(stop.Lon, 'f', -1, 64),
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}
