package availability

import (
	"strings"
	"time"
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// NormalizeDay maps a weekday name to its time.Weekday. Both the full name
// ("Monday") and the 3-letter abbreviation ("Mon") are accepted, in any
// case; schedules stored in either form keep working.
func NormalizeDay(day string) (time.Weekday, bool) {
	s := strings.ToLower(strings.TrimSpace(day))
	if wd, ok := weekdays[s]; ok {
		return wd, true
	}
	if len(s) == 3 {
		for name, wd := range weekdays {
			if name[:3] == s {
				return wd, true
			}
		}
	}
	return 0, false
}
