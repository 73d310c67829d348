package gtfs

import (
	"strconv"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

// newHolidayCalendar builds the holiday calendar observed by the agency.
// Service is suspended on federal holidays.
func newHolidayCalendar() *cal.BusinessCalendar {
	calendar := cal.NewBusinessCalendar()
	calendar.AddHoliday(
		us.NewYear,
		us.MlkDay,
		us.PresidentsDay,
		us.MemorialDay,
		us.Juneteenth,
		us.IndependenceDay,
		us.LaborDay,
		us.ColumbusDay,
		us.VeteransDay,
		us.ThanksgivingDay,
		us.ChristmasDay,
	)
	return calendar
}

// holidayCalendarDates produces one ServiceRemoved exception for serviceId on
// every holiday between two gtfs dates in YYYYMMDD form, inclusive, ordered by
// date. Observed days (a Friday before a Saturday holiday and so on) count as
// holidays the same way the actual day does.
func holidayCalendarDates(serviceId string, startDate, endDate int) []CalendarDate {
	calendar := newHolidayCalendar()
	start := timeFromGTFSDate(startDate)
	end := timeFromGTFSDate(endDate)

	var result []CalendarDate
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		actual, observed, _ := calendar.IsHoliday(day)
		if !actual && !observed {
			continue
		}
		result = append(result, CalendarDate{
			ServiceId:     serviceId,
			Date:          gtfsDateFromTime(day),
			ExceptionType: ServiceRemoved,
		})
	}
	return result
}

// timeFromGTFSDate converts a YYYYMMDD integer to a UTC midnight time
func timeFromGTFSDate(date int) time.Time {
	return time.Date(date/10000, time.Month((date/100)%100), date%100, 0, 0, 0, 0, time.UTC)
}

// gtfsDateFromTime converts a time to its YYYYMMDD integer form
func gtfsDateFromTime(at time.Time) int {
	date, _ := strconv.Atoi(at.Format("20060102"))
	return date
}
