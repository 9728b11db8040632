// Package availability derives a doctor's bookable time slots for a concrete
// calendar date from the recurring weekly schedule. It is a pure computation:
// nothing here reads or writes state.
package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"opdflow/models"
)

// parseClock converts an "HH:MM" string to minutes from midnight.
func parseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return hours*60 + minutes, nil
}

// formatClock renders minutes from midnight as a 24h "HH:MM" string.
func formatClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// formatDisplay renders minutes from midnight as a 12h clock string with
// AM/PM and no leading zero on the hour, e.g. 570 -> "9:30 AM".
func formatDisplay(m int) string {
	hour := m / 60
	minute := m % 60

	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, minute, period)
}

// DeriveSlots computes the ordered bookable slots for date from a doctor's
// recurring weekly sessions and uniform slot duration.
//
// Sessions are matched against date's weekday; each matching session is
// walked from its start in slotDuration steps, and a step is emitted while
// its start lies strictly before the session end. Slots keep session list
// order and ascend within a session; overlapping or unsorted sessions are
// the caller's responsibility.
//
// Every emitted slot is Available. Masking slots already taken by existing
// bookings is a second pass this function does not perform.
func DeriveSlots(sessions []models.WeeklySession, slotDuration int, date time.Time) []models.Slot {
	if slotDuration <= 0 {
		return nil
	}

	weekday := date.Weekday()
	var slots []models.Slot
	for _, session := range sessions {
		day, ok := NormalizeDay(session.Day)
		if !ok || day != weekday {
			continue
		}
		start, err := parseClock(session.StartTime)
		if err != nil {
			continue
		}
		end, err := parseClock(session.EndTime)
		if err != nil {
			continue
		}

		for t := start; t < end; t += slotDuration {
			slots = append(slots, models.Slot{
				Time:      formatClock(t),
				Display:   formatDisplay(t),
				Available: true,
			})
		}
	}
	return slots
}
