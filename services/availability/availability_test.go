package availability

import (
	"reflect"
	"testing"
	"time"

	"opdflow/models"
)

// 2025-06-02 is a Monday.
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func session(day, start, end string) models.WeeklySession {
	return models.WeeklySession{Day: day, StartTime: start, EndTime: end}
}

func times(slots []models.Slot) []string {
	var out []string
	for _, s := range slots {
		out = append(out, s.Time)
	}
	return out
}

func TestDeriveSlots(t *testing.T) {
	cases := []struct {
		name     string
		sessions []models.WeeklySession
		duration int
		date     time.Time
		expected []string
	}{
		{
			name:     "partial final step is kept while its start precedes the session end",
			sessions: []models.WeeklySession{session("Monday", "09:00", "09:45")},
			duration: 30,
			date:     monday,
			expected: []string{"09:00", "09:30"},
		},
		{
			name:     "start equals end yields nothing",
			sessions: []models.WeeklySession{session("Monday", "10:00", "10:00")},
			duration: 30,
			date:     monday,
			expected: nil,
		},
		{
			name:     "no session on the requested weekday yields nothing",
			sessions: []models.WeeklySession{session("Tuesday", "09:00", "12:00")},
			duration: 30,
			date:     monday,
			expected: nil,
		},
		{
			name:     "full hour splits evenly",
			sessions: []models.WeeklySession{session("Monday", "09:00", "10:00")},
			duration: 30,
			date:     monday,
			expected: []string{"09:00", "09:30"},
		},
		{
			name:     "abbreviated day name matches",
			sessions: []models.WeeklySession{session("Mon", "09:00", "10:00")},
			duration: 30,
			date:     monday,
			expected: []string{"09:00", "09:30"},
		},
		{
			name: "sessions concatenate in list order without a global sort",
			sessions: []models.WeeklySession{
				session("Monday", "14:00", "15:00"),
				session("Monday", "09:00", "10:00"),
			},
			duration: 60,
			date:     monday,
			expected: []string{"14:00", "09:00"},
		},
		{
			name: "only the matching weekday's sessions contribute",
			sessions: []models.WeeklySession{
				session("Monday", "09:00", "09:30"),
				session("Friday", "09:00", "12:00"),
			},
			duration: 15,
			date:     monday,
			expected: []string{"09:00", "09:15"},
		},
		{
			name:     "duration longer than the session still emits the opening step",
			sessions: []models.WeeklySession{session("Monday", "09:00", "09:15")},
			duration: 30,
			date:     monday,
			expected: []string{"09:00"},
		},
		{
			name:     "empty session list yields nothing",
			sessions: nil,
			duration: 30,
			date:     monday,
			expected: nil,
		},
		{
			name:     "malformed time strings skip the session",
			sessions: []models.WeeklySession{session("Monday", "9am", "noon")},
			duration: 30,
			date:     monday,
			expected: nil,
		},
		{
			name:     "non-positive duration yields nothing",
			sessions: []models.WeeklySession{session("Monday", "09:00", "12:00")},
			duration: 0,
			date:     monday,
			expected: nil,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := times(DeriveSlots(c.sessions, c.duration, c.date))
			if !reflect.DeepEqual(got, c.expected) {
				t.Fatalf("expected %v, got %v", c.expected, got)
			}
		})
	}
}

func TestDeriveSlotsDisplay(t *testing.T) {
	slots := DeriveSlots(
		[]models.WeeklySession{session("Monday", "09:00", "10:00")},
		30, monday,
	)
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if slots[0].Display != "9:00 AM" || slots[1].Display != "9:30 AM" {
		t.Fatalf("unexpected displays: %q, %q", slots[0].Display, slots[1].Display)
	}
	for _, s := range slots {
		if !s.Available {
			t.Fatalf("slot %s not marked available", s.Time)
		}
	}
}

func Test_formatClock(t *testing.T) {
	cases := []struct {
		minutes  int
		expected string
	}{
		{0, "00:00"},
		{570, "09:30"},
		{810, "13:30"},
		{1439, "23:59"},
	}

	for _, c := range cases {
		if got := formatClock(c.minutes); got != c.expected {
			t.Fatalf("formatClock(%d): expected %s, got %s", c.minutes, c.expected, got)
		}
	}
}

func Test_formatDisplay(t *testing.T) {
	cases := []struct {
		minutes  int
		expected string
	}{
		{0, "12:00 AM"},
		{570, "9:30 AM"},
		{720, "12:00 PM"},
		{810, "1:30 PM"},
		{1425, "11:45 PM"},
	}

	for _, c := range cases {
		if got := formatDisplay(c.minutes); got != c.expected {
			t.Fatalf("formatDisplay(%d): expected %s, got %s", c.minutes, c.expected, got)
		}
	}
}

func Test_parseClock(t *testing.T) {
	cases := []struct {
		in      string
		minutes int
		ok      bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"noon", 0, false},
		{"", 0, false},
	}

	for _, c := range cases {
		got, err := parseClock(c.in)
		if c.ok != (err == nil) {
			t.Fatalf("parseClock(%q): unexpected error state %v", c.in, err)
		}
		if c.ok && got != c.minutes {
			t.Fatalf("parseClock(%q): expected %d, got %d", c.in, c.minutes, got)
		}
	}
}
