package gtfs

// Hand maintained definitions for Columbia County Public Transportation.
// Stops live in stops.csv and are referenced here by stop_id only; route
// geometries live in one geojson file per shape_id.

const AgencyId = "CC"

const agencyEmail = "tbd"

// Route ids
const (
	RouteShopping = "SHOPPING"
	RouteHudAlb   = "HUD_ALB"
	RouteHudCht   = "HUD_CHT"
	RouteMond     = "MOND"
)

// Service ids
const (
	DailyServiceId   = "DAILY"
	MondayServiceId  = "MONDAY"
	TuesFriServiceId = "TUES_FRI"
	WeekdayServiceId = "WEEKDAY"
)

// Stop ids assigned by the stop registry (see the stops package)
const (
	stopHudsonAmtrak    = "STOP-c99cb943-4db3-4fb6-b612-c97a7d202d13"
	stopSeventhStPark   = "STOP-9a1d503f-4812-4ec4-af0d-6275316cc2c4"
	stopFairviewPlaza   = "STOP-0a858b61-d2dc-44f8-a6fd-9a528df6a3a8"
	stopGreenportWalmrt = "STOP-4f0c2f3e-8a51-4f9a-9a0b-2f45cf13a9d0"
	stopShopRite        = "STOP-7d8a90c1-33be-4a2e-b7c4-5e2f8f6f2b11"
	stopValatie         = "STOP-b6f3c2ad-1f09-4f1e-8a9f-3c7d53d0e522"
	stopRensselaerRail  = "STOP-2c1de9b4-6a77-45c8-9d2a-8e0b4f6a713c"
	stopEmpireStPlaza   = "STOP-91b7e6f2-0d34-4c5b-a1e8-6f9c2d8b4a05"
	stopClaverack       = "STOP-5e4a7b90-c213-48d6-bf3a-1d8e6c2f9a47"
	stopGhentTownHall   = "STOP-d0b92c64-7f18-4e3a-85c1-9a2b6e4f0d73"
	stopChathamMainSt   = "STOP-38c5f1a2-94d7-4b0e-a6c3-7e1f9d2b5c80"
	stopPhilmont        = "STOP-a74d2e81-5b3c-49f0-8d6e-0c9b1f4a2e35"
)

var agency = Agency{
	AgencyId:       AgencyId,
	AgencyName:     "Columbia County Public Transportation",
	AgencyUrl:      "https://publictransportation.columbiacountyny.com",
	AgencyTimezone: "America/New_York",
	AgencyPhone:    "518-672-4901",
	AgencyEmail:    agencyEmail,
}

var feedInfo = FeedInfo{
	FeedPublisherName: agency.AgencyName,
	FeedPublisherUrl:  agency.AgencyUrl,
	FeedContactEmail:  agencyEmail,
	FeedContactUrl:    agency.AgencyUrl,
	FeedLang:          "en-US",
	FeedVersion:       1,
	FeedStartDate:     20250704,
	FeedEndDate:       20290704,
}

var routes = []Route{
	{
		RouteId:       RouteShopping,
		AgencyId:      AgencyId,
		RouteLongName: "Hudson-Greenport Shopping Shuttle",
		RouteDesc:     "Daily service looping through many shopping locations between Hudson and Greenport",
		RouteType:     RouteTypeBus,
	},
	{
		RouteId:       RouteHudAlb,
		AgencyId:      AgencyId,
		RouteLongName: "Hudson-Albany Commuter Shuttle",
		RouteDesc:     "Weekday shuttle service between Hudson and Albany",
		RouteType:     RouteTypeBus,
	},
	{
		RouteId:       RouteHudCht,
		AgencyId:      AgencyId,
		RouteLongName: "Chatham-Hudson Bus Route",
		RouteDesc:     "Tuesday and Friday free service between Chatham and Hudson",
		RouteType:     RouteTypeBus,
	},
	{
		RouteId:       RouteMond,
		AgencyId:      AgencyId,
		RouteLongName: "Monday County Bus",
		RouteDesc:     "Monday morning bus service through various shopping locations in the county",
		RouteType:     RouteTypeBus,
	},
}

var trips = []Trip{
	{
		RouteId:       RouteShopping,
		ServiceId:     DailyServiceId,
		TripId:        "SHOPPING_AM_LOOP",
		TripShortName: "Shopping Shuttle Morning Loop",
		DirectionId:   DirectionOutbound,
		ShapeId:       "SHOPPING_LOOP",
		BikesAllowed:  BikesYes,
		StopTimes: []StopTimeEntry{
			{ArrivalTime: "09:00", StopId: stopHudsonAmtrak},
			{ArrivalTime: "09:05", StopId: stopSeventhStPark},
			{ArrivalTime: "09:20", StopId: stopFairviewPlaza},
			{ArrivalTime: "09:30", StopId: stopGreenportWalmrt, DepartureTime: "09:40"},
			{ArrivalTime: "09:45", StopId: stopShopRite},
			{ArrivalTime: "10:00", StopId: stopHudsonAmtrak},
		},
	},
	{
		RouteId:       RouteShopping,
		ServiceId:     DailyServiceId,
		TripId:        "SHOPPING_PM_LOOP",
		TripShortName: "Shopping Shuttle Afternoon Loop",
		DirectionId:   DirectionOutbound,
		ShapeId:       "SHOPPING_LOOP",
		BikesAllowed:  BikesYes,
		StopTimes: []StopTimeEntry{
			{ArrivalTime: "13:00", StopId: stopHudsonAmtrak},
			{ArrivalTime: "13:05", StopId: stopSeventhStPark},
			{ArrivalTime: "13:20", StopId: stopFairviewPlaza},
			{ArrivalTime: "13:30", StopId: stopGreenportWalmrt, DepartureTime: "13:40"},
			{ArrivalTime: "13:45", StopId: stopShopRite},
			{ArrivalTime: "14:00", StopId: stopHudsonAmtrak},
		},
	},
	{
		RouteId:       RouteHudAlb,
		ServiceId:     WeekdayServiceId,
		TripId:        "HUD_ALB_AM_NORTHBOUND",
		TripShortName: "Morning Commuter to Albany",
		DirectionId:   DirectionOutbound,
		ShapeId:       "HUD_ALB_NORTHBOUND",
		BikesAllowed:  BikesYes,
		StopTimes: []StopTimeEntry{
			{ArrivalTime: "06:30", StopId: stopHudsonAmtrak},
			{ArrivalTime: "06:55", StopId: stopValatie},
			{ArrivalTime: "07:20", StopId: stopRensselaerRail},
			{ArrivalTime: "07:35", StopId: stopEmpireStPlaza},
		},
	},
	{
		RouteId:       RouteHudAlb,
		ServiceId:     WeekdayServiceId,
		TripId:        "HUD_ALB_PM_SOUTHBOUND",
		TripShortName: "Evening Commuter to Hudson",
		DirectionId:   DirectionInbound,
		ShapeId:       "HUD_ALB_SOUTHBOUND",
		BikesAllowed:  BikesYes,
		StopTimes: []StopTimeEntry{
			{ArrivalTime: "16:30", StopId: stopEmpireStPlaza},
			{ArrivalTime: "16:45", StopId: stopRensselaerRail},
			{ArrivalTime: "17:10", StopId: stopValatie},
			{ArrivalTime: "17:35", StopId: stopHudsonAmtrak},
		},
	},
	{
		RouteId:       RouteHudCht,
		ServiceId:     TuesFriServiceId,
		TripId:        "HUD_CHT_AM_EASTBOUND",
		TripShortName: "Hudson to Chatham",
		DirectionId:   DirectionOutbound,
		ShapeId:       "HUD_CHT_EASTBOUND",
		BikesAllowed:  BikesUnknown,
		StopTimes: []StopTimeEntry{
			{ArrivalTime: "10:00", StopId: stopSeventhStPark},
			{ArrivalTime: "10:15", StopId: stopClaverack},
			{ArrivalTime: "10:30", StopId: stopGhentTownHall},
			{ArrivalTime: "10:45", StopId: stopChathamMainSt},
		},
	},
	{
		RouteId:       RouteHudCht,
		ServiceId:     TuesFriServiceId,
		TripId:        "HUD_CHT_PM_WESTBOUND",
		TripShortName: "Chatham to Hudson",
		DirectionId:   DirectionInbound,
		ShapeId:       "HUD_CHT_WESTBOUND",
		BikesAllowed:  BikesUnknown,
		StopTimes: []StopTimeEntry{
			{ArrivalTime: "14:00", StopId: stopChathamMainSt},
			{ArrivalTime: "14:15", StopId: stopGhentTownHall},
			{ArrivalTime: "14:30", StopId: stopClaverack},
			{ArrivalTime: "14:45", StopId: stopSeventhStPark},
		},
	},
	{
		RouteId:       RouteMond,
		ServiceId:     MondayServiceId,
		TripId:        "MOND_AM_LOOP",
		TripShortName: "Monday County Loop",
		DirectionId:   DirectionOutbound,
		ShapeId:       "MOND_LOOP",
		BikesAllowed:  BikesNo,
		StopTimes: []StopTimeEntry{
			{ArrivalTime: "08:00", StopId: stopPhilmont},
			{ArrivalTime: "08:15", StopId: stopClaverack},
			{ArrivalTime: "08:30", StopId: stopFairviewPlaza, DepartureTime: "09:30"},
			{ArrivalTime: "09:40", StopId: stopGreenportWalmrt},
			{ArrivalTime: "10:10", StopId: stopPhilmont},
		},
	},
}

var calendars = []Calendar{
	{
		ServiceId: DailyServiceId,
		Monday:    ServiceIsAvailable,
		Tuesday:   ServiceIsAvailable,
		Wednesday: ServiceIsAvailable,
		Thursday:  ServiceIsAvailable,
		Friday:    ServiceIsAvailable,
		Saturday:  ServiceIsAvailable,
		Sunday:    ServiceIsAvailable,
		StartDate: 20250704,
		EndDate:   20290704,
	},
	{
		ServiceId: MondayServiceId,
		Monday:    ServiceIsAvailable,
		Tuesday:   ServiceNotAvailable,
		Wednesday: ServiceNotAvailable,
		Thursday:  ServiceNotAvailable,
		Friday:    ServiceNotAvailable,
		Saturday:  ServiceNotAvailable,
		Sunday:    ServiceNotAvailable,
		StartDate: 20250704,
		EndDate:   20290704,
	},
	{
		ServiceId: TuesFriServiceId,
		Monday:    ServiceNotAvailable,
		Tuesday:   ServiceIsAvailable,
		Wednesday: ServiceNotAvailable,
		Thursday:  ServiceIsAvailable,
		Friday:    ServiceNotAvailable,
		Saturday:  ServiceNotAvailable,
		Sunday:    ServiceNotAvailable,
		StartDate: 20250704,
		EndDate:   20290704,
	},
	{
		ServiceId: WeekdayServiceId,
		Monday:    ServiceIsAvailable,
		Tuesday:   ServiceIsAvailable,
		Wednesday: ServiceIsAvailable,
		Thursday:  ServiceIsAvailable,
		Friday:    ServiceIsAvailable,
		Saturday:  ServiceNotAvailable,
		Sunday:    ServiceNotAvailable,
		StartDate: 20250704,
		EndDate:   20290704,
	},
}

// Static returns the full hand maintained dataset. Holiday exceptions for the
// daily service are derived over the feed validity window so they stay in sync
// with FeedStartDate and FeedEndDate.
func Static() *StaticData {
	return &StaticData{
		Agency:        agency,
		FeedInfo:      feedInfo,
		Routes:        routes,
		Trips:         trips,
		Calendars:     calendars,
		CalendarDates: holidayCalendarDates(DailyServiceId, feedInfo.FeedStartDate, feedInfo.FeedEndDate),
	}
}
