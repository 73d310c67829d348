package brouter

import "math"

// mean earth radius
const earthRadiusMeters = 6371008.8

const degreesToRadians = math.Pi / 180

// greatCircleMeters calculates the great circle distance between two pairs of
// coordinates with the haversine formula.
// returns distance in METERS
func greatCircleMeters(lat1, lon1, lat2, lon2 float64) float64 {
	diffLat := (lat2 - lat1) * degreesToRadians
	diffLon := (lon2 - lon1) * degreesToRadians

	sinLat := math.Sin(diffLat / 2)
	sinLon := math.Sin(diffLon / 2)
	a := sinLat*sinLat +
		math.Cos(lat1*degreesToRadians)*math.Cos(lat2*degreesToRadians)*sinLon*sinLon

	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(a))
}
