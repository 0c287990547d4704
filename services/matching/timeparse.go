package matching

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"sessionplanner/models"
)

const (
	defaultStartHour     = 10
	defaultDurationHours = 2.0
	dateLayout           = "2006-01-02"
)

var (
	timeOfDayPattern = regexp.MustCompile(`(?i)(\d+):?(\d*)\s*(AM|PM)`)
	durationPattern  = regexp.MustCompile(`(?i)(\d+\.?\d*)\s*hours?`)
)

// ParseTime extracts the hour of day from strings like "9 AM" or "2:30 pm".
// Minutes are ignored. Absent or unrecognised input yields 10.
func ParseTime(timeString string) int {
	m := timeOfDayPattern.FindStringSubmatch(timeString)
	if m == nil {
		return defaultStartHour
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return defaultStartHour
	}
	switch period := strings.ToUpper(m[3]); {
	case period == "PM" && hour != 12:
		hour += 12
	case period == "AM" && hour == 12:
		hour = 0
	}
	return hour
}

// ParseDuration reads "<n> hour(s)" and returns n, or 2 when absent or unparseable.
func ParseDuration(durationString string) float64 {
	m := durationPattern.FindStringSubmatch(durationString)
	if m == nil {
		return defaultDurationHours
	}
	hours, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return defaultDurationHours
	}
	return hours
}

// ParseSessionDateTime combines a calendar date with the hour parsed from timeString.
// Instants are UTC with minutes always zero. An unparseable date keeps the zero date.
func ParseSessionDateTime(date, timeString string) time.Time {
	y, mo, d := parseDate(date)
	return time.Date(y, mo, d, ParseTime(timeString), 0, 0, 0, time.UTC)
}

func parseDate(date string) (int, time.Month, int) {
	date = strings.TrimSpace(date)
	if t, err := time.Parse(dateLayout, date); err == nil {
		return t.Date()
	}
	if t, err := time.Parse(time.RFC3339, date); err == nil {
		return t.UTC().Date()
	}
	return 1, time.January, 1
}

// SessionWindow returns the start and end instants of a session.
func SessionWindow(s models.Session) (time.Time, time.Time) {
	start := ParseSessionDateTime(s.Date, s.Time)
	end := start.Add(time.Duration(ParseDuration(s.Duration) * float64(time.Hour)))
	return start, end
}
