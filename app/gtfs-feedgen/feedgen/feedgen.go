// Package feedgen drives the batch commands of the feed generator: bundle
// assembly, stop id maintenance, route link emission and position
// reconciliation. Every command runs to completion or fails without touching
// previously written files.
package feedgen

import (
	"fmt"
	"io"
	"log"

	"github.com/ColumbiaCountyTransit/gtfsgen/business/brouter"
	"github.com/ColumbiaCountyTransit/gtfsgen/business/data/gtfs"
	"github.com/ColumbiaCountyTransit/gtfsgen/business/data/nogos"
	"github.com/ColumbiaCountyTransit/gtfsgen/business/data/stops"
)

// Paths locates the flat files the generator reads and rewrites
type Paths struct {
	StopsFile string
	NogosFile string
	ShapesDir string
	FeedFile  string
}

// GenerateFeed assembles the gtfs bundle from the static definitions, the stop
// registry and the shape files, and writes the zip archive
func GenerateFeed(log *log.Logger, paths Paths) error {
	registry, err := stops.Load(paths.StopsFile)
	if err != nil {
		return err
	}
	tables, err := Assemble(gtfs.Static(), registry, paths.ShapesDir)
	if err != nil {
		return err
	}
	if err = WriteZip(tables, paths.FeedFile); err != nil {
		return err
	}
	log.Printf("gtfs archive created at %s", paths.FeedFile)
	return nil
}

// AssignStopIds fills blank stop ids in the registry file and saves it back
func AssignStopIds(log *log.Logger, paths Paths) error {
	registry, err := stops.Load(paths.StopsFile)
	if err != nil {
		return err
	}
	assigned, err := registry.AssignIds()
	if err != nil {
		return err
	}
	if assigned == 0 {
		log.Printf("all %d stops in %s already have ids", registry.Len(), paths.StopsFile)
		return nil
	}
	if err = registry.Save(paths.StopsFile); err != nil {
		return err
	}
	log.Printf("assigned %d stop ids in %s", assigned, paths.StopsFile)
	return nil
}

// PrintRouteLinks emits one brouter link per shape to w
func PrintRouteLinks(log *log.Logger, w io.Writer, paths Paths) error {
	registry, err := stops.Load(paths.StopsFile)
	if err != nil {
		return err
	}
	store, err := nogos.Load(paths.NogosFile)
	if err != nil {
		return err
	}
	links, err := brouter.GenerateURLs(log, gtfs.Static(), registry, store)
	if err != nil {
		return err
	}
	for _, link := range links {
		if _, err = fmt.Fprintf(w, "%s: %s\n", link.ShapeId, link.URL); err != nil {
			return err
		}
	}
	return nil
}

// ReconcilePositions reads an edited route link back against the trip with
// tripId, prints the change report to w, and persists the updated registry and
// exclusion zones. Nothing is saved if reconciliation fails.
func ReconcilePositions(log *log.Logger, w io.Writer, rawURL, tripId string,
	paths Paths, toleranceMeters float64) error {

	registry, err := stops.Load(paths.StopsFile)
	if err != nil {
		return err
	}
	store, err := nogos.Load(paths.NogosFile)
	if err != nil {
		return err
	}

	report, err := brouter.Reconcile(log, rawURL, tripId, gtfs.Static(), registry, store, toleranceMeters)
	if err != nil {
		return err
	}
	writeReport(w, report)

	if err = registry.Save(paths.StopsFile); err != nil {
		return err
	}
	if err = store.Save(paths.NogosFile); err != nil {
		return err
	}
	log.Printf("updated %s and %s", paths.StopsFile, paths.NogosFile)
	return nil
}

// writeReport renders the reconciliation report, largest displacement first
func writeReport(w io.Writer, report *brouter.Report) {
	fmt.Fprintf(w, "Stop positions for trip %s (shape %s), %d waypoints:\n",
		report.TripId, report.ShapeId, len(report.Changes))
	for _, change := range report.Changes {
		if change.Moved {
			fmt.Fprintf(w, "  %s (%s): moved %.1f m\n", change.Name, change.StopId, change.DistanceMeters)
			fmt.Fprintf(w, "    old: (%.6f, %.6f)\n", change.OldLat, change.OldLon)
			fmt.Fprintf(w, "    new: (%.6f, %.6f)\n", change.NewLat, change.NewLon)
		} else {
			fmt.Fprintf(w, "  %s (%s): unchanged (%.1f m)\n", change.Name, change.StopId, change.DistanceMeters)
		}
	}
	if report.MovedCount > 0 {
		fmt.Fprintf(w, "%d/%d stops updated, total %.1f m, average %.1f m\n",
			report.MovedCount, len(report.Changes), report.TotalMeters, report.AverageMeters)
	} else {
		fmt.Fprintln(w, "no stops were significantly moved")
	}
	fmt.Fprintf(w, "%d exclusion zones recorded for shape %s\n", report.ZoneCount, report.ShapeId)
}
