package appointment

import (
	"testing"
	"time"

	"opdflow/models"
)

// a fixed "today" keeps classification deterministic
var today = time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

func appt(date string, status models.AppointmentStatus) models.Appointment {
	return models.Appointment{Date: date, Status: status}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		appt     models.Appointment
		expected Bucket
	}{
		{"future pending is upcoming", appt("2025-06-20", models.StatusPending), BucketUpcoming},
		{"future confirmed is upcoming", appt("2025-06-20", models.StatusConfirmed), BucketUpcoming},
		{"today pending is upcoming", appt("2025-06-10", models.StatusPending), BucketUpcoming},
		{"today confirmed is upcoming", appt("2025-06-10", models.StatusConfirmed), BucketUpcoming},
		{"yesterday pending is past", appt("2025-06-09", models.StatusPending), BucketPast},
		{"yesterday confirmed is past", appt("2025-06-09", models.StatusConfirmed), BucketPast},
		{"future cancelled is past", appt("2025-06-20", models.StatusCancelled), BucketPast},
		{"future completed is past", appt("2025-06-20", models.StatusCompleted), BucketPast},
		{"today cancelled is past", appt("2025-06-10", models.StatusCancelled), BucketPast},
		{"unparseable date is past", appt("June 10th", models.StatusPending), BucketPast},
		{"empty date is past", appt("", models.StatusConfirmed), BucketPast},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Classify(c.appt, today); got != c.expected {
				t.Fatalf("Classify(%q, %s): expected %s, got %s",
					c.appt.Date, c.appt.Status, c.expected, got)
			}
		})
	}
}

func TestClassifyIgnoresTimeOfDay(t *testing.T) {
	// 23:59 local: a same-day appointment whose slot time already passed must
	// still land in upcoming because bucketing is day-granular.
	lateToday := time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC)
	a := models.Appointment{Date: "2025-06-10", Time: "09:00", Status: models.StatusConfirmed}
	if got := Classify(a, lateToday); got != BucketUpcoming {
		t.Fatalf("expected same-day appointment to be upcoming, got %s", got)
	}
}

func TestPartition(t *testing.T) {
	appts := []models.Appointment{
		{ID: "a", Date: "2025-06-20", Status: models.StatusPending},
		{ID: "b", Date: "2025-06-01", Status: models.StatusCompleted},
		{ID: "c", Date: "2025-06-10", Status: models.StatusConfirmed},
		{ID: "d", Date: "2025-06-25", Status: models.StatusCancelled},
		{ID: "e", Date: "2025-06-05", Status: models.StatusPending},
	}

	upcoming, past := Partition(appts, today)

	wantUpcoming := []string{"a", "c"}
	wantPast := []string{"b", "d", "e"}

	if len(upcoming) != len(wantUpcoming) {
		t.Fatalf("expected %d upcoming, got %d", len(wantUpcoming), len(upcoming))
	}
	for i, id := range wantUpcoming {
		if upcoming[i].ID != id {
			t.Errorf("upcoming[%d]: expected %s, got %s", i, id, upcoming[i].ID)
		}
	}
	if len(past) != len(wantPast) {
		t.Fatalf("expected %d past, got %d", len(wantPast), len(past))
	}
	for i, id := range wantPast {
		if past[i].ID != id {
			t.Errorf("past[%d]: expected %s, got %s", i, id, past[i].ID)
		}
	}
}

func TestFilterPastBucket(t *testing.T) {
	past := []models.Appointment{
		{ID: "done", Status: models.StatusCompleted},
		{ID: "cancelled", Status: models.StatusCancelled},
		{ID: "lapsed", Status: models.StatusPending},
	}

	cases := []struct {
		filter   PastFilter
		expected []string
	}{
		{FilterAll, []string{"done", "cancelled", "lapsed"}},
		{FilterCompleted, []string{"done"}},
		{FilterNotCompleted, []string{"cancelled", "lapsed"}},
		{PastFilter("bogus"), []string{"done", "cancelled", "lapsed"}},
		{PastFilter(""), []string{"done", "cancelled", "lapsed"}},
	}

	for _, c := range cases {
		got := FilterPastBucket(past, c.filter)
		if len(got) != len(c.expected) {
			t.Fatalf("filter %q: expected %d results, got %d", c.filter, len(c.expected), len(got))
		}
		for i, id := range c.expected {
			if got[i].ID != id {
				t.Errorf("filter %q result[%d]: expected %s, got %s", c.filter, i, id, got[i].ID)
			}
		}
	}
}
