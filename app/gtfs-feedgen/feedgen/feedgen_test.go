package feedgen

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/ColumbiaCountyTransit/gtfsgen/business/data/gtfs"
	"github.com/ColumbiaCountyTransit/gtfsgen/business/data/nogos"
	"github.com/ColumbiaCountyTransit/gtfsgen/business/data/stops"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// testPaths seeds a working directory with a registry covering the static
// dataset and returns paths pointing into it
func testPaths(t *testing.T) Paths {
	t.Helper()
	dir := t.TempDir()
	paths := Paths{
		StopsFile: filepath.Join(dir, "stops.csv"),
		NogosFile: filepath.Join(dir, "nogos.csv"),
		ShapesDir: shapesDirFor(t, gtfs.Static()),
		FeedFile:  filepath.Join(dir, "feed.zip"),
	}
	registry := registryFor(t, gtfs.Static())
	if err := registry.Save(paths.StopsFile); err != nil {
		t.Fatalf("seeding registry: %v", err)
	}
	return paths
}

func TestGenerateFeed(t *testing.T) {
	is := is.New(t)
	paths := testPaths(t)

	is.NoErr(GenerateFeed(testLogger(), paths))

	info, err := os.Stat(paths.FeedFile)
	is.NoErr(err)
	is.True(info.Size() > 0)
}

func TestGenerateFeedFailureWritesNothing(t *testing.T) {
	is := is.New(t)
	paths := testPaths(t)
	// break the registry: drop every stop so the trips dangle
	is.NoErr(os.WriteFile(paths.StopsFile, []byte("stop_id,stop_name,stop_lat,stop_lon\n"), 0o644))

	err := GenerateFeed(testLogger(), paths)
	is.True(err != nil)

	_, statErr := os.Stat(paths.FeedFile)
	is.True(os.IsNotExist(statErr)) // no partial bundle
}

func TestAssignStopIds(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	paths := Paths{StopsFile: filepath.Join(dir, "stops.csv")}
	is.NoErr(os.WriteFile(paths.StopsFile, []byte(
		"stop_id,stop_name,stop_lat,stop_lon\n"+
			"STOP-1,Hudson Amtrak Station,42.2528,-73.7927\n"+
			",7th Street Park,42.2521,-73.7851\n"), 0o644))

	is.NoErr(AssignStopIds(testLogger(), paths))

	registry, err := stops.Load(paths.StopsFile)
	is.NoErr(err)
	rows := registry.Stops()
	is.Equal(rows[0].StopId, "STOP-1")
	is.True(strings.HasPrefix(rows[1].StopId, "STOP-"))
	is.True(len(rows[1].StopId) > len("STOP-"))
}

func TestPrintRouteLinks(t *testing.T) {
	is := is.New(t)
	paths := testPaths(t)

	var out bytes.Buffer
	is.NoErr(PrintRouteLinks(testLogger(), &out, paths))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	// one link per distinct shape in the static dataset
	distinct := make(map[string]bool)
	for _, trip := range gtfs.Static().Trips {
		distinct[trip.ShapeId] = true
	}
	is.Equal(len(lines), len(distinct))
	for _, line := range lines {
		is.True(strings.Contains(line, ": https://brouter.de/brouter-web/#map="))
	}
}

func TestReconcilePositionsPersists(t *testing.T) {
	is := is.New(t)
	paths := testPaths(t)

	// build a link from the current registry state for the morning commuter
	// run, then move its first waypoint north before reconciling
	registry, err := stops.Load(paths.StopsFile)
	is.NoErr(err)
	trip := gtfs.Static().Trips[2]
	is.Equal(trip.TripId, "HUD_ALB_AM_NORTHBOUND")

	var waypoints []string
	var firstStopId string
	for i, entry := range trip.StopTimes {
		stop, err := registry.Lookup(entry.StopId)
		is.NoErr(err)
		lat := stop.Lat
		if i == 0 {
			firstStopId = stop.StopId
			lat += 0.05
		}
		waypoints = append(waypoints, fmt.Sprintf("%g,%g", stop.Lon, lat))
	}
	url := "https://brouter.de/brouter-web/#map=11/42.4655/-73.6002/standard&lonlats=" +
		strings.Join(waypoints, ";") + "&nogos=-73.76,42.26,120&profile=car-fast"

	var out bytes.Buffer
	is.NoErr(ReconcilePositions(testLogger(), &out, url, trip.TripId, paths, 1.0))
	is.True(strings.Contains(out.String(), "moved"))

	// registry file reflects the moved stop
	reloaded, err := stops.Load(paths.StopsFile)
	is.NoErr(err)
	before, err := registry.Lookup(firstStopId)
	is.NoErr(err)
	after, err := reloaded.Lookup(firstStopId)
	is.NoErr(err)
	is.True(after.Lat > before.Lat)

	// exclusion zone file was written for the trip's shape
	store, err := nogos.Load(paths.NogosFile)
	is.NoErr(err)
	zones := store.ForShape(trip.ShapeId)
	is.Equal(len(zones), 1)
	is.Equal(zones[0].RadiusMeters, 120.0)
}

func TestReconcilePositionsFailurePersistsNothing(t *testing.T) {
	is := is.New(t)
	paths := testPaths(t)
	originalStops, err := os.ReadFile(paths.StopsFile)
	is.NoErr(err)

	// one waypoint short for the six stop shopping loop
	url := "https://brouter.de/brouter-web/#lonlats=-73.5,42;-73.51,42.01;-73.52,42.02;-73.53,42.03;-73.54,42.04"

	err = ReconcilePositions(testLogger(), io.Discard, url, "SHOPPING_AM_LOOP", paths, 1.0)
	is.True(err != nil)

	afterStops, readErr := os.ReadFile(paths.StopsFile)
	is.NoErr(readErr)
	is.Equal(string(afterStops), string(originalStops)) // registry file untouched
	_, statErr := os.Stat(paths.NogosFile)
	is.True(os.IsNotExist(statErr)) // zone store never created
}
