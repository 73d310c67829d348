package feedgen

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/ColumbiaCountyTransit/gtfsgen/business/data/gtfs"
	"github.com/ColumbiaCountyTransit/gtfsgen/business/data/shapes"
	"github.com/ColumbiaCountyTransit/gtfsgen/business/data/stops"
)

// Table is one gtfs output file ready for csv encoding
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Assemble transforms the static definitions, stop registry and shape files
// into the full gtfs table set. Referential integrity is checked before any
// table is built: a trip or route referencing an unknown entity aborts the
// whole assembly.
func Assemble(data *gtfs.StaticData, registry *stops.Registry, shapesDir string) ([]Table, error) {
	if err := checkReferences(data, registry, shapesDir); err != nil {
		return nil, err
	}

	stopTimes, err := stopTimesTable(data)
	if err != nil {
		return nil, err
	}
	shapeTable, err := shapesTable(data, shapesDir)
	if err != nil {
		return nil, err
	}

	return []Table{
		agencyTable(data),
		stopsTable(registry),
		routesTable(data),
		tripsTable(data),
		stopTimes,
		calendarTable(data),
		calendarDatesTable(data),
		feedInfoTable(data),
		shapeTable,
	}, nil
}

// checkReferences verifies every cross reference in the dataset before any
// output is produced
func checkReferences(data *gtfs.StaticData, registry *stops.Registry, shapesDir string) error {
	routeIds := make(map[string]bool)
	for _, route := range data.Routes {
		if route.AgencyId != data.Agency.AgencyId {
			return fmt.Errorf("route %s references unknown agency_id %s: %w",
				route.RouteId, route.AgencyId, gtfs.ErrDanglingReference)
		}
		routeIds[route.RouteId] = true
	}

	serviceIds := make(map[string]bool)
	for _, calendar := range data.Calendars {
		serviceIds[calendar.ServiceId] = true
	}
	for _, calendarDate := range data.CalendarDates {
		if !serviceIds[calendarDate.ServiceId] {
			return fmt.Errorf("calendar date %d references unknown service_id %s: %w",
				calendarDate.Date, calendarDate.ServiceId, gtfs.ErrDanglingReference)
		}
	}

	for _, stop := range registry.Stops() {
		if stop.StopId == "" {
			return fmt.Errorf("stop %q has no stop_id, run the stops command first: %w",
				stop.Name, gtfs.ErrInvalidInput)
		}
	}

	for i := range data.Trips {
		trip := &data.Trips[i]
		if !routeIds[trip.RouteId] {
			return fmt.Errorf("trip %s references unknown route_id %s: %w",
				trip.TripId, trip.RouteId, gtfs.ErrDanglingReference)
		}
		if !serviceIds[trip.ServiceId] {
			return fmt.Errorf("trip %s references unknown service_id %s: %w",
				trip.TripId, trip.ServiceId, gtfs.ErrDanglingReference)
		}
		for _, entry := range trip.StopTimes {
			if _, err := registry.Lookup(entry.StopId); err != nil {
				return fmt.Errorf("trip %s references unknown stop_id %s: %w",
					trip.TripId, entry.StopId, gtfs.ErrDanglingReference)
			}
		}
		if trip.ShapeId != "" {
			if _, err := os.Stat(shapes.File(shapesDir, trip.ShapeId)); err != nil {
				return fmt.Errorf("trip %s references shape_id %s with no geojson file under %s: %w",
					trip.TripId, trip.ShapeId, shapesDir, gtfs.ErrDanglingReference)
			}
		}
	}
	return nil
}

func agencyTable(data *gtfs.StaticData) Table {
	a := data.Agency
	return Table{
		Name:   "agency.txt",
		Header: []string{"agency_id", "agency_name", "agency_url", "agency_timezone", "agency_phone", "agency_email"},
		Rows: [][]string{
			{a.AgencyId, a.AgencyName, a.AgencyUrl, a.AgencyTimezone, a.AgencyPhone, a.AgencyEmail},
		},
	}
}

func stopsTable(registry *stops.Registry) Table {
	table := Table{
		Name:   "stops.txt",
		Header: []string{"stop_id", "stop_name", "stop_lat", "stop_lon"},
	}
	for _, stop := range registry.Stops() {
		table.Rows = append(table.Rows, []string{
			stop.StopId,
			stop.Name,
			strconv.FormatFloat(stop.Lat, 'f', -1, 64),
			strconv.FormatFloat(stop.Lon, 'f', -1, 64),
		})
	}
	return table
}

func routesTable(data *gtfs.StaticData) Table {
	table := Table{
		Name:   "routes.txt",
		Header: []string{"route_id", "agency_id", "route_long_name", "route_desc", "route_type"},
	}
	for _, route := range data.Routes {
		table.Rows = append(table.Rows, []string{
			route.RouteId,
			route.AgencyId,
			route.RouteLongName,
			route.RouteDesc,
			strconv.Itoa(int(route.RouteType)),
		})
	}
	return table
}

func tripsTable(data *gtfs.StaticData) Table {
	table := Table{
		Name:   "trips.txt",
		Header: []string{"route_id", "service_id", "trip_id", "trip_short_name", "direction_id", "shape_id", "bikes_allowed"},
	}
	for i := range data.Trips {
		trip := &data.Trips[i]
		table.Rows = append(table.Rows, []string{
			trip.RouteId,
			trip.ServiceId,
			trip.TripId,
			trip.TripShortName,
			strconv.Itoa(int(trip.DirectionId)),
			trip.ShapeId,
			strconv.Itoa(int(trip.BikesAllowed)),
		})
	}
	return table
}

// stopTimesTable flattens every trip's stop times in definition order, which
// is the travel order. departure_time falls back to the arrival when the
// entry carries no explicit departure.
func stopTimesTable(data *gtfs.StaticData) (Table, error) {
	table := Table{
		Name:   "stop_times.txt",
		Header: []string{"trip_id", "arrival_time", "departure_time", "stop_id", "stop_sequence"},
	}
	for i := range data.Trips {
		trip := &data.Trips[i]
		for sequence, entry := range trip.StopTimes {
			arrival, err := gtfs.ScheduleSeconds(entry.ArrivalTime)
			if err != nil {
				return Table{}, fmt.Errorf("trip %s: %v: %w", trip.TripId, err, gtfs.ErrInvalidInput)
			}
			departure := arrival
			if entry.DepartureTime != "" {
				departure, err = gtfs.ScheduleSeconds(entry.DepartureTime)
				if err != nil {
					return Table{}, fmt.Errorf("trip %s: %v: %w", trip.TripId, err, gtfs.ErrInvalidInput)
				}
			}
			table.Rows = append(table.Rows, []string{
				trip.TripId,
				gtfs.FormatScheduleTime(arrival),
				gtfs.FormatScheduleTime(departure),
				entry.StopId,
				strconv.Itoa(sequence),
			})
		}
	}
	return table, nil
}

func calendarTable(data *gtfs.StaticData) Table {
	table := Table{
		Name: "calendar.txt",
		Header: []string{"service_id", "monday", "tuesday", "wednesday", "thursday", "friday",
			"saturday", "sunday", "start_date", "end_date"},
	}
	for _, c := range data.Calendars {
		table.Rows = append(table.Rows, []string{
			c.ServiceId,
			strconv.Itoa(int(c.Monday)),
			strconv.Itoa(int(c.Tuesday)),
			strconv.Itoa(int(c.Wednesday)),
			strconv.Itoa(int(c.Thursday)),
			strconv.Itoa(int(c.Friday)),
			strconv.Itoa(int(c.Saturday)),
			strconv.Itoa(int(c.Sunday)),
			strconv.Itoa(c.StartDate),
			strconv.Itoa(c.EndDate),
		})
	}
	return table
}

func calendarDatesTable(data *gtfs.StaticData) Table {
	table := Table{
		Name:   "calendar_dates.txt",
		Header: []string{"service_id", "date", "exception_type"},
	}
	for _, cd := range data.CalendarDates {
		table.Rows = append(table.Rows, []string{
			cd.ServiceId,
			strconv.Itoa(cd.Date),
			strconv.Itoa(int(cd.ExceptionType)),
		})
	}
	return table
}

func feedInfoTable(data *gtfs.StaticData) Table {
	fi := data.FeedInfo
	return Table{
		Name: "feed_info.txt",
		Header: []string{"feed_publisher_name", "feed_publisher_url", "feed_contact_email",
			"feed_contact_url", "feed_lang", "feed_version", "feed_start_date", "feed_end_date"},
		Rows: [][]string{{
			fi.FeedPublisherName,
			fi.FeedPublisherUrl,
			fi.FeedContactEmail,
			fi.FeedContactUrl,
			fi.FeedLang,
			strconv.Itoa(fi.FeedVersion),
			strconv.Itoa(fi.FeedStartDate),
			strconv.Itoa(fi.FeedEndDate),
		}},
	}
}

// shapesTable reads one geojson file per distinct shape id, in sorted shape id
// order, numbering points from 1 as gtfs requires
func shapesTable(data *gtfs.StaticData, shapesDir string) (Table, error) {
	distinct := make(map[string]bool)
	for i := range data.Trips {
		if data.Trips[i].ShapeId != "" {
			distinct[data.Trips[i].ShapeId] = true
		}
	}
	shapeIds := make([]string, 0, len(distinct))
	for shapeId := range distinct {
		shapeIds = append(shapeIds, shapeId)
	}
	sort.Strings(shapeIds)

	table := Table{
		Name:   "shapes.txt",
		Header: []string{"shape_id", "shape_pt_lat", "shape_pt_lon", "shape_pt_sequence"},
	}
	for _, shapeId := range shapeIds {
		points, err := shapes.LineString(shapes.File(shapesDir, shapeId))
		if err != nil {
			return Table{}, fmt.Errorf("reading shape %s: %w", shapeId, err)
		}
		for i, point := range points {
			table.Rows = append(table.Rows, []string{
				shapeId,
				strconv.FormatFloat(point.Lat, 'f', -1, 64),
				strconv.FormatFloat(point.Lon, 'f', -1, 64),
				strconv.Itoa(i + 1),
			})
		}
	}
	return table, nil
}
