package appointment

import (
	"time"

	"opdflow/models"
)

// Bucket is the derived temporal classification of an appointment. It is
// recomputed on every listing request and never persisted, so it cannot go
// stale as the wall clock advances.
type Bucket string

const (
	BucketUpcoming Bucket = "upcoming"
	BucketPast     Bucket = "past"
)

// PastFilter narrows the past bucket.
type PastFilter string

const (
	FilterAll          PastFilter = "all"
	FilterCompleted    PastFilter = "completed"
	FilterNotCompleted PastFilter = "not-completed"
)

const dateLayout = "2006-01-02"

// Classify buckets an appointment relative to today. Cancelled and completed
// appointments are always past regardless of date; otherwise the
// appointment's date is compared to today at day granularity (the slot time
// string is ignored), with date >= today counting as upcoming.
func Classify(appt models.Appointment, today time.Time) Bucket {
	if appt.Status.IsTerminal() {
		return BucketPast
	}

	d, err := time.ParseInLocation(dateLayout, appt.Date, today.Location())
	if err != nil {
		return BucketPast
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	if d.Before(day) {
		return BucketPast
	}
	return BucketUpcoming
}

// Partition splits appointments into the upcoming and past buckets,
// preserving input order within each.
func Partition(appts []models.Appointment, today time.Time) (upcoming, past []models.Appointment) {
	for _, a := range appts {
		if Classify(a, today) == BucketUpcoming {
			upcoming = append(upcoming, a)
		} else {
			past = append(past, a)
		}
	}
	return upcoming, past
}

// FilterPastBucket applies a past-bucket sub-filter. Unknown filters behave
// like FilterAll.
func FilterPastBucket(past []models.Appointment, filter PastFilter) []models.Appointment {
	switch filter {
	case FilterCompleted:
		var out []models.Appointment
		for _, a := range past {
			if a.Status == models.StatusCompleted {
				out = append(out, a)
			}
		}
		return out
	case FilterNotCompleted:
		var out []models.Appointment
		for _, a := range past {
			if a.Status != models.StatusCompleted {
				out = append(out, a)
			}
		}
		return out
	default:
		return past
	}
}
