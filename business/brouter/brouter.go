// Package brouter builds and parses brouter-web route links. A link encodes an
// ordered waypoint per stop plus the exclusion zones of one shape, so a route
// can be laid out or corrected in the routing tool and read back.
package brouter

import (
	"fmt"
	"log"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/ColumbiaCountyTransit/gtfsgen/business/data/gtfs"
	"github.com/ColumbiaCountyTransit/gtfsgen/business/data/nogos"
	"github.com/ColumbiaCountyTransit/gtfsgen/business/data/stops"
)

// brouter-web parameter syntax is fixed by the tool and must be preserved
// byte for byte
const (
	urlPrefix = "https://brouter.de/brouter-web/#map=11/42.4655/-73.6002/standard&lonlats="
	urlSuffix = "&profile=car-fast"
)

// Waypoint is one ordered route point parsed from or written to a link
type Waypoint struct {
	Lon float64
	Lat float64
}

// RouteLink pairs a shape id with the link that lays its route out in the tool
type RouteLink struct {
	ShapeId string
	URL     string
}

// formatCoord renders a coordinate with the shortest form that round-trips,
// keeping links byte-identical for equal input
func formatCoord(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// BuildURL produces a link that routes through sequence in order while
// avoiding zones. Pure: equal input yields an identical string.
func BuildURL(sequence []stops.Stop, zones []nogos.Zone) (string, error) {
	if len(sequence) < 2 {
		return "", fmt.Errorf("route link needs at least 2 stops, got %d: %w",
			len(sequence), gtfs.ErrInvalidInput)
	}
	var b strings.Builder
	b.WriteString(urlPrefix)
	for i, stop := range sequence {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(formatCoord(stop.Lon))
		b.WriteByte(',')
		b.WriteString(formatCoord(stop.Lat))
	}
	if len(zones) > 0 {
		b.WriteString("&nogos=")
		for i, zone := range zones {
			if i > 0 {
				b.WriteByte(';')
			}
			b.WriteString(formatCoord(zone.Lon))
			b.WriteByte(',')
			b.WriteString(formatCoord(zone.Lat))
			b.WriteByte(',')
			b.WriteString(formatCoord(zone.RadiusMeters))
		}
	}
	b.WriteString(urlSuffix)
	return b.String(), nil
}

// ParseURL reads the ordered waypoints and exclusion zones back out of a
// brouter link. Parameters live in the hash fragment on brouter-web links;
// plain query parameters are accepted too. Returned zones carry no shape id.
func ParseURL(rawURL string) ([]Waypoint, []nogos.Zone, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing route link: %v: %w", err, gtfs.ErrInvalidInput)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, nil, fmt.Errorf("route link is missing scheme or host: %w", gtfs.ErrInvalidInput)
	}
	if !strings.Contains(strings.ToLower(parsed.Host), "brouter") {
		return nil, nil, fmt.Errorf("%s is not a brouter host: %w", parsed.Host, gtfs.ErrInvalidInput)
	}

	params := fragmentParams(parsed)
	lonlats, present := params["lonlats"]
	if !present || lonlats == "" {
		return nil, nil, fmt.Errorf("route link has no lonlats parameter: %w", gtfs.ErrInvalidInput)
	}

	var waypoints []Waypoint
	for _, pair := range strings.Split(lonlats, ";") {
		lon, lat, ok := parseLonLat(pair)
		if !ok {
			// tolerate malformed pairs the way the tool does
			continue
		}
		waypoints = append(waypoints, Waypoint{Lon: lon, Lat: lat})
	}

	var zones []nogos.Zone
	for _, entry := range strings.Split(params["nogos"], ";") {
		parts := strings.Split(entry, ",")
		if len(parts) != 3 {
			continue
		}
		lon, lat, ok := parseLonLat(parts[0] + "," + parts[1])
		if !ok {
			continue
		}
		radius, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			continue
		}
		zones = append(zones, nogos.Zone{Lat: lat, Lon: lon, RadiusMeters: radius})
	}
	return waypoints, zones, nil
}

// fragmentParams collects the key value parameters of a link, preferring the
// hash fragment brouter-web uses over ordinary query parameters. Both are
// split by hand: the coordinate lists use semicolons, which url.Values
// refuses in a query string.
func fragmentParams(parsed *url.URL) map[string]string {
	raw := parsed.Fragment
	if raw == "" {
		raw = parsed.RawQuery
	}
	params := make(map[string]string)
	for _, part := range strings.Split(raw, "&") {
		key, value, found := strings.Cut(part, "=")
		if found {
			params[key] = value
		}
	}
	return params
}

func parseLonLat(pair string) (lon, lat float64, ok bool) {
	lonStr, latStr, found := strings.Cut(pair, ",")
	if !found {
		return 0, 0, false
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return 0, 0, false
	}
	lat, err = strconv.ParseFloat(latStr, 64)
	if err != nil {
		return 0, 0, false
	}
	return lon, lat, true
}

// stopSequence returns a trip's stop times ordered by arrival time
func stopSequence(trip *gtfs.Trip) ([]gtfs.StopTimeEntry, error) {
	type timed struct {
		entry   gtfs.StopTimeEntry
		seconds int
	}
	entries := make([]timed, 0, len(trip.StopTimes))
	for _, entry := range trip.StopTimes {
		seconds, err := gtfs.ScheduleSeconds(entry.ArrivalTime)
		if err != nil {
			return nil, fmt.Errorf("trip %s stop %s: %v: %w",
				trip.TripId, entry.StopId, err, gtfs.ErrInvalidInput)
		}
		entries = append(entries, timed{entry: entry, seconds: seconds})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].seconds < entries[j].seconds
	})
	sequence := make([]gtfs.StopTimeEntry, 0, len(entries))
	for _, e := range entries {
		sequence = append(sequence, e.entry)
	}
	return sequence, nil
}

// GenerateURLs produces one link per distinct shape across all trips, in trip
// definition order. Stop ids missing from the registry are logged and left out
// of the link so the remaining route can still be inspected.
func GenerateURLs(log *log.Logger, data *gtfs.StaticData, registry *stops.Registry, store *nogos.Store) ([]RouteLink, error) {
	seen := make(map[string]bool)
	var links []RouteLink
	for i := range data.Trips {
		trip := &data.Trips[i]
		if len(trip.StopTimes) == 0 {
			continue
		}
		sequence, err := stopSequence(trip)
		if err != nil {
			return nil, err
		}
		routeStops := make([]stops.Stop, 0, len(sequence))
		for _, entry := range sequence {
			stop, err := registry.Lookup(entry.StopId)
			if err != nil {
				log.Printf("trip %s references unknown stop_id %s, leaving it out", trip.TripId, entry.StopId)
				continue
			}
			routeStops = append(routeStops, *stop)
		}
		if len(routeStops) == 0 {
			continue
		}
		link, err := BuildURL(routeStops, store.ForShape(trip.ShapeId))
		if err != nil {
			return nil, fmt.Errorf("trip %s: %w", trip.TripId, err)
		}
		label := trip.ShapeId
		if label == "" {
			label = trip.TripId
		}
		key := trip.ShapeId + "\x00" + link
		if seen[key] {
			continue
		}
		seen[key] = true
		links = append(links, RouteLink{ShapeId: label, URL: link})
	}
	return links, nil
}
