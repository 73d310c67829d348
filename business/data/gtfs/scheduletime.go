package gtfs

import (
	"fmt"
	"strconv"
	"strings"
)

// ScheduleSeconds parses seconds of the schedule day from a gtfs schedule time.
// Accepts HH:MM:SS, H:MM:SS and the HH:MM shorthand used in the static trip
// definitions. Times past midnight are expressed as values above 24:00:00 on
// the service day the trip begins, so hours are not bounded at 24.
func ScheduleSeconds(scheduleTime string) (int, error) {
	parts := strings.Split(strings.TrimSpace(scheduleTime), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("expected HH:MM or HH:MM:SS schedule time, found: %s", scheduleTime)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}
	seconds := 0
	if len(parts) == 3 {
		seconds, err = strconv.Atoi(parts[2])
		if err != nil {
			return 0, err
		}
	}
	if hours < 0 || minutes < 0 || minutes > 59 || seconds < 0 || seconds > 59 {
		return 0, fmt.Errorf("schedule time out of range: %s", scheduleTime)
	}
	return (hours * 60 * 60) + (minutes * 60) + seconds, nil
}

// FormatScheduleTime renders schedule day seconds in the HH:MM:SS form
// required by stop_times.txt
func FormatScheduleTime(seconds int) string {
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds/60)%60, seconds%60)
}
