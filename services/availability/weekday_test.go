package availability

import (
	"testing"
	"time"
)

func TestNormalizeDay(t *testing.T) {
	cases := []struct {
		in       string
		expected time.Weekday
		ok       bool
	}{
		{"Sunday", time.Sunday, true},
		{"Monday", time.Monday, true},
		{"monday", time.Monday, true},
		{"MONDAY", time.Monday, true},
		{"Mon", time.Monday, true},
		{"mon", time.Monday, true},
		{"Tue", time.Tuesday, true},
		{"Wed", time.Wednesday, true},
		{"Thu", time.Thursday, true},
		{"Fri", time.Friday, true},
		{"Sat", time.Saturday, true},
		{"Sun", time.Sunday, true},
		{" Saturday ", time.Saturday, true},
		{"Mo", 0, false},
		{"Tues", 0, false},
		{"holiday", 0, false},
		{"", 0, false},
	}

	for _, c := range cases {
		got, ok := NormalizeDay(c.in)
		if ok != c.ok {
			t.Fatalf("NormalizeDay(%q): expected ok=%v, got %v", c.in, c.ok, ok)
		}
		if ok && got != c.expected {
			t.Fatalf("NormalizeDay(%q): expected %v, got %v", c.in, c.expected, got)
		}
	}
}
