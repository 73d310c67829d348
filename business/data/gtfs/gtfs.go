// Package gtfs holds the static gtfs data model used by the feed generator.
package gtfs

// Agency contains the fields emitted to an agency.txt row
type Agency struct {
	AgencyId       string
	AgencyName     string
	AgencyUrl      string
	AgencyTimezone string
	AgencyPhone    string
	AgencyEmail    string
}

// FeedInfo contains the fields emitted to the single feed_info.txt row
type FeedInfo struct {
	FeedPublisherName string
	FeedPublisherUrl  string
	FeedContactEmail  string
	FeedContactUrl    string
	FeedLang          string
	FeedVersion       int
	// FeedStartDate and FeedEndDate are gtfs dates in YYYYMMDD form
	FeedStartDate int
	FeedEndDate   int
}

// Route contains a route definition emitted to a routes.txt row
type Route struct {
	RouteId       string
	AgencyId      string
	RouteLongName string
	RouteDesc     string
	RouteType     RouteType
}

// StopTimeEntry is one scheduled stop on a trip. ArrivalTime and DepartureTime
// are schedule times in HH:MM form. DepartureTime is empty when the vehicle
// departs at the arrival time.
type StopTimeEntry struct {
	ArrivalTime   string
	StopId        string
	DepartureTime string
}

// Trip contains a trip definition and its ordered stop times.
// Several trips may share one ShapeId when they follow the same geometry.
type Trip struct {
	RouteId       string
	ServiceId     string
	TripId        string
	TripShortName string
	DirectionId   DirectionId
	ShapeId       string
	BikesAllowed  BikesAllowed
	StopTimes     []StopTimeEntry
}

// Calendar contains a weekly service pattern emitted to a calendar.txt row
type Calendar struct {
	ServiceId string
	Monday    ServiceAvailable
	Tuesday   ServiceAvailable
	Wednesday ServiceAvailable
	Thursday  ServiceAvailable
	Friday    ServiceAvailable
	Saturday  ServiceAvailable
	Sunday    ServiceAvailable
	// StartDate and EndDate are gtfs dates in YYYYMMDD form
	StartDate int
	EndDate   int
}

// CalendarDate contains a service exception emitted to a calendar_dates.txt row
type CalendarDate struct {
	ServiceId     string
	Date          int
	ExceptionType ServiceException
}

// StaticData bundles the hand maintained definitions the feed is generated from
type StaticData struct {
	Agency        Agency
	FeedInfo      FeedInfo
	Routes        []Route
	Trips         []Trip
	Calendars     []Calendar
	CalendarDates []CalendarDate
}
