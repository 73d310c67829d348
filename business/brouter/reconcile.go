package brouter

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/ColumbiaCountyTransit/gtfsgen/business/data/gtfs"
	"github.com/ColumbiaCountyTransit/gtfsgen/business/data/nogos"
	"github.com/ColumbiaCountyTransit/gtfsgen/business/data/stops"
)

// DefaultToleranceMeters absorbs the coordinate precision lost in the tool's
// link encoding. Displacement at or under this distance counts as unchanged.
const DefaultToleranceMeters = 1.0

// StopChange records what happened to one stop during reconciliation
type StopChange struct {
	StopId         string
	Name           string
	OldLat         float64
	OldLon         float64
	NewLat         float64
	NewLon         float64
	DistanceMeters float64
	Moved          bool
}

// Report summarizes one reconciliation run. Changes are ordered by descending
// displacement so the largest moves read first.
type Report struct {
	TripId        string
	ShapeId       string
	Changes       []StopChange
	MovedCount    int
	TotalMeters   float64
	AverageMeters float64
	ZoneCount     int
}

// Reconcile maps the waypoints of an edited route link back onto the stop
// sequence of the trip with tripId, by position: the i-th waypoint is the i-th
// stop. The tool preserves waypoint order when a point is dragged, which is
// what makes positional mapping safe; a count mismatch means stops were added
// or removed in the tool, and reconciliation refuses to guess.
//
// Stops displaced beyond toleranceMeters get their registry coordinates
// overwritten, and the link's exclusion zones replace the stored set for the
// trip's shape wholesale, clearing it when the link carries none. Nothing is
// persisted here; on error the registry and store are left unmodified.
func Reconcile(log *log.Logger, rawURL, tripId string, data *gtfs.StaticData,
	registry *stops.Registry, store *nogos.Store, toleranceMeters float64) (*Report, error) {

	if toleranceMeters <= 0 {
		toleranceMeters = DefaultToleranceMeters
	}

	trip := findTrip(data, tripId)
	if trip == nil {
		return nil, fmt.Errorf("trip %s (available trips: %s): %w",
			tripId, strings.Join(tripIds(data), ", "), gtfs.ErrNotFound)
	}

	sequence, err := stopSequence(trip)
	if err != nil {
		return nil, err
	}
	if len(sequence) < 2 {
		return nil, fmt.Errorf("trip %s has %d stops, reconciliation needs at least 2: %w",
			tripId, len(sequence), gtfs.ErrInvalidInput)
	}

	waypoints, zones, err := ParseURL(rawURL)
	if err != nil {
		return nil, err
	}
	if len(waypoints) != len(sequence) {
		return nil, fmt.Errorf("expected %d waypoints for trip %s, got %d: %w",
			len(sequence), tripId, len(waypoints), gtfs.ErrCoordinateCountMismatch)
	}

	// resolve the whole sequence before touching anything so a missing stop
	// leaves the registry unmodified
	resolved := make([]*stops.Stop, len(sequence))
	for i, entry := range sequence {
		resolved[i], err = registry.Lookup(entry.StopId)
		if err != nil {
			return nil, fmt.Errorf("trip %s: %w", tripId, err)
		}
	}

	report := &Report{
		TripId:    tripId,
		ShapeId:   trip.ShapeId,
		ZoneCount: len(zones),
	}
	for i, waypoint := range waypoints {
		stop := resolved[i]
		change := StopChange{
			StopId: stop.StopId,
			Name:   stop.Name,
			OldLat: stop.Lat,
			OldLon: stop.Lon,
			NewLat: waypoint.Lat,
			NewLon: waypoint.Lon,
		}
		change.DistanceMeters = greatCircleMeters(stop.Lat, stop.Lon, waypoint.Lat, waypoint.Lon)
		change.Moved = change.DistanceMeters > toleranceMeters
		if change.Moved {
			if err = registry.UpdateCoordinates(stop.StopId, waypoint.Lat, waypoint.Lon); err != nil {
				return nil, err
			}
			report.MovedCount++
			report.TotalMeters += change.DistanceMeters
		}
		report.Changes = append(report.Changes, change)
	}
	if report.MovedCount > 0 {
		report.AverageMeters = report.TotalMeters / float64(report.MovedCount)
	}

	sort.SliceStable(report.Changes, func(i, j int) bool {
		return report.Changes[i].DistanceMeters > report.Changes[j].DistanceMeters
	})

	store.ReplaceForShape(trip.ShapeId, zones)

	log.Printf("reconciled trip %s: %d of %d stops moved, %d exclusion zones for shape %s",
		tripId, report.MovedCount, len(report.Changes), report.ZoneCount, trip.ShapeId)
	return report, nil
}

func findTrip(data *gtfs.StaticData, tripId string) *gtfs.Trip {
	for i := range data.Trips {
		if data.Trips[i].TripId == tripId {
			return &data.Trips[i]
		}
	}
	return nil
}

func tripIds(data *gtfs.StaticData) []string {
	ids := make([]string, 0, len(data.Trips))
	for i := range data.Trips {
		ids = append(ids, data.Trips[i].TripId)
	}
	return ids
}
