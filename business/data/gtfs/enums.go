package gtfs

// RouteType is the gtfs route_type field categorizing the vehicle used on a route
type RouteType int

const (
	RouteTypeTram      RouteType = 0
	RouteTypeSubway    RouteType = 1
	RouteTypeRail      RouteType = 2
	RouteTypeBus       RouteType = 3
	RouteTypeFerry     RouteType = 4
	RouteTypeCable     RouteType = 5
	RouteTypeAerial    RouteType = 6
	RouteTypeFunicular RouteType = 7
	RouteTypeTrolley   RouteType = 11
	RouteTypeMonorail  RouteType = 12
)

// DirectionId is the gtfs direction_id field distinguishing directional variants of a route
type DirectionId int

const (
	DirectionOutbound DirectionId = 0
	DirectionInbound  DirectionId = 1
)

// BikesAllowed is the gtfs bikes_allowed field
type BikesAllowed int

const (
	BikesUnknown BikesAllowed = 0
	BikesYes     BikesAllowed = 1
	BikesNo      BikesAllowed = 2
)

// ServiceAvailable marks a weekday column in calendar.txt as in or out of service
type ServiceAvailable int

const (
	ServiceNotAvailable ServiceAvailable = 0
	ServiceIsAvailable  ServiceAvailable = 1
)

// ServiceException is the gtfs exception_type field in calendar_dates.txt
type ServiceException int

const (
	ServiceAdded   ServiceException = 1
	ServiceRemoved ServiceException = 2
)
