package feedgen

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/ColumbiaCountyTransit/gtfsgen/business/data/gtfs"
	"github.com/ColumbiaCountyTransit/gtfsgen/business/data/shapes"
	"github.com/ColumbiaCountyTransit/gtfsgen/business/data/stops"
)

// registryFor builds a registry holding every stop id the dataset references
func registryFor(t *testing.T, data *gtfs.StaticData) *stops.Registry {
	t.Helper()
	var b strings.Builder
	b.WriteString("stop_id,stop_name,stop_lat,stop_lon\n")
	seen := make(map[string]bool)
	row := 0
	for _, trip := range data.Trips {
		for _, entry := range trip.StopTimes {
			if seen[entry.StopId] {
				continue
			}
			seen[entry.StopId] = true
			fmt.Fprintf(&b, "%s,Stop %d,%f,%f\n", entry.StopId, row, 42.2+float64(row)*0.01, -73.7-float64(row)*0.01)
			row++
		}
	}
	registry, err := stops.Read(strings.NewReader(b.String()), "stops.csv")
	if err != nil {
		t.Fatalf("building registry: %v", err)
	}
	return registry
}

// shapesDirFor writes a two point geojson file for every shape the dataset references
func shapesDirFor(t *testing.T, data *gtfs.StaticData) string {
	t.Helper()
	dir := t.TempDir()
	for _, trip := range data.Trips {
		if trip.ShapeId == "" {
			continue
		}
		content := `{"type":"FeatureCollection","features":[{"type":"Feature","geometry":` +
			`{"type":"LineString","coordinates":[[-73.7927,42.2528],[-73.7612,42.2703]]}}]}`
		if err := os.WriteFile(shapes.File(dir, trip.ShapeId), []byte(content), 0o644); err != nil {
			t.Fatalf("writing shape fixture: %v", err)
		}
	}
	return dir
}

func tableByName(tables []Table, name string) *Table {
	for i := range tables {
		if tables[i].Name == name {
			return &tables[i]
		}
	}
	return nil
}

func TestAssembleFullDataset(t *testing.T) {
	is := is.New(t)
	data := gtfs.Static()
	registry := registryFor(t, data)
	shapesDir := shapesDirFor(t, data)

	tables, err := Assemble(data, registry, shapesDir)
	is.NoErr(err)

	wantNames := []string{"agency.txt", "stops.txt", "routes.txt", "trips.txt", "stop_times.txt",
		"calendar.txt", "calendar_dates.txt", "feed_info.txt", "shapes.txt"}
	is.Equal(len(tables), len(wantNames))
	for i, table := range tables {
		is.Equal(table.Name, wantNames[i])
	}

	agency := tableByName(tables, "agency.txt")
	is.Equal(len(agency.Rows), 1)
	is.Equal(agency.Rows[0][0], "CC")
	is.Equal(agency.Rows[0][3], "America/New_York")

	is.Equal(len(tableByName(tables, "routes.txt").Rows), 4)
	is.Equal(len(tableByName(tables, "calendar.txt").Rows), 4)
	is.Equal(len(tableByName(tables, "stops.txt").Rows), registry.Len())
	is.True(len(tableByName(tables, "calendar_dates.txt").Rows) > 0)
}

func TestAssembleStopTimes(t *testing.T) {
	is := is.New(t)
	data := gtfs.Static()
	tables, err := Assemble(data, registryFor(t, data), shapesDirFor(t, data))
	is.NoErr(err)

	var rows [][]string
	for _, row := range tableByName(tables, "stop_times.txt").Rows {
		if row[0] == "SHOPPING_AM_LOOP" {
			rows = append(rows, row)
		}
	}
	is.Equal(len(rows), 6)

	// first stop: departure falls back to the arrival, sequence starts at 0
	is.Equal(rows[0][1], "09:00:00")
	is.Equal(rows[0][2], "09:00:00")
	is.Equal(rows[0][4], "0")

	// the Walmart layover carries its own departure time
	is.Equal(rows[3][1], "09:30:00")
	is.Equal(rows[3][2], "09:40:00")
	is.Equal(rows[3][4], "3")

	is.Equal(rows[5][4], "5")
}

func TestAssembleShapes(t *testing.T) {
	is := is.New(t)
	data := gtfs.Static()
	tables, err := Assemble(data, registryFor(t, data), shapesDirFor(t, data))
	is.NoErr(err)

	shapeTable := tableByName(tables, "shapes.txt")
	// every fixture shape has two points
	distinct := make(map[string]bool)
	for _, trip := range data.Trips {
		distinct[trip.ShapeId] = true
	}
	is.Equal(len(shapeTable.Rows), 2*len(distinct))

	// sequences are numbered from 1 per shape, shapes in sorted order
	is.Equal(shapeTable.Rows[0][3], "1")
	is.Equal(shapeTable.Rows[1][3], "2")
	previous := ""
	for _, row := range shapeTable.Rows {
		if row[3] == "1" {
			is.True(row[0] > previous) // shape ids ascend
			previous = row[0]
		}
	}
}

func minimalData() *gtfs.StaticData {
	return &gtfs.StaticData{
		Agency:   gtfs.Agency{AgencyId: "CC", AgencyName: "Test", AgencyUrl: "https://example.org", AgencyTimezone: "America/New_York"},
		FeedInfo: gtfs.FeedInfo{FeedPublisherName: "Test", FeedLang: "en-US", FeedVersion: 1, FeedStartDate: 20250101, FeedEndDate: 20260101},
		Routes: []gtfs.Route{
			{RouteId: "LOOP", AgencyId: "CC", RouteLongName: "Loop", RouteType: gtfs.RouteTypeBus},
		},
		Calendars: []gtfs.Calendar{
			{ServiceId: "DAILY", Monday: gtfs.ServiceIsAvailable, StartDate: 20250101, EndDate: 20260101},
		},
		Trips: []gtfs.Trip{
			{
				RouteId:   "LOOP",
				ServiceId: "DAILY",
				TripId:    "LOOP_AM",
				ShapeId:   "LOOP",
				StopTimes: []gtfs.StopTimeEntry{
					{ArrivalTime: "09:00", StopId: "STOP-A"},
					{ArrivalTime: "09:10", StopId: "STOP-B"},
				},
			},
		},
	}
}

func TestAssembleDanglingReferences(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(data *gtfs.StaticData)
		wantInId string
	}{
		{
			name:     "unknown route",
			mutate:   func(data *gtfs.StaticData) { data.Trips[0].RouteId = "GONE_ROUTE" },
			wantInId: "GONE_ROUTE",
		},
		{
			name:     "unknown service",
			mutate:   func(data *gtfs.StaticData) { data.Trips[0].ServiceId = "GONE_SERVICE" },
			wantInId: "GONE_SERVICE",
		},
		{
			name:     "unknown stop",
			mutate:   func(data *gtfs.StaticData) { data.Trips[0].StopTimes[1].StopId = "STOP-GONE" },
			wantInId: "STOP-GONE",
		},
		{
			name:     "unknown agency on route",
			mutate:   func(data *gtfs.StaticData) { data.Routes[0].AgencyId = "GONE_AGENCY" },
			wantInId: "GONE_AGENCY",
		},
		{
			name: "calendar date for unknown service",
			mutate: func(data *gtfs.StaticData) {
				data.CalendarDates = []gtfs.CalendarDate{
					{ServiceId: "GONE_SERVICE", Date: 20250704, ExceptionType: gtfs.ServiceRemoved},
				}
			},
			wantInId: "GONE_SERVICE",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := minimalData()
			registry := registryFor(t, minimalData())
			shapesDir := shapesDirFor(t, minimalData())
			tt.mutate(data)

			_, err := Assemble(data, registry, shapesDir)
			if !errors.Is(err, gtfs.ErrDanglingReference) {
				t.Errorf("Assemble() error = %v, want ErrDanglingReference", err)
				return
			}
			if !strings.Contains(err.Error(), tt.wantInId) {
				t.Errorf("Assemble() error %q does not name %q", err, tt.wantInId)
			}
		})
	}
}

func TestAssembleMissingShapeFile(t *testing.T) {
	is := is.New(t)
	data := minimalData()
	registry := registryFor(t, data)

	// an empty shapes dir means the trip's shape geojson is absent
	_, err := Assemble(data, registry, t.TempDir())
	is.True(errors.Is(err, gtfs.ErrDanglingReference))
	is.True(strings.Contains(err.Error(), "LOOP"))
}

func TestAssembleRejectsBlankStopIds(t *testing.T) {
	is := is.New(t)
	data := minimalData()
	registry, err := stops.Read(strings.NewReader(
		"stop_id,stop_name,stop_lat,stop_lon\n"+
			"STOP-A,Stop A,42.2,-73.7\n"+
			"STOP-B,Stop B,42.21,-73.71\n"+
			",Unregistered Stop,42.22,-73.72\n"), "stops.csv")
	is.NoErr(err)

	_, err = Assemble(data, registry, shapesDirFor(t, data))
	is.True(errors.Is(err, gtfs.ErrInvalidInput))
	is.True(strings.Contains(err.Error(), "Unregistered Stop"))
}
