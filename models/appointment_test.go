package models

import "testing"

func TestAppointmentStatusIsValid(t *testing.T) {
	valid := []AppointmentStatus{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("expected %q to be valid", s)
		}
	}

	invalid := []AppointmentStatus{"", "Pending", "PENDING", "done", "rescheduled"}
	for _, s := range invalid {
		if s.IsValid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestAppointmentStatusIsTerminal(t *testing.T) {
	cases := []struct {
		status   AppointmentStatus
		terminal bool
	}{
		{StatusPending, false},
		{StatusConfirmed, false},
		{StatusCancelled, true},
		{StatusCompleted, true},
	}
	for _, c := range cases {
		if got := c.status.IsTerminal(); got != c.terminal {
			t.Errorf("IsTerminal(%q): expected %v, got %v", c.status, c.terminal, got)
		}
	}
}

func TestAppointmentStatusCanTransitionTo(t *testing.T) {
	all := []AppointmentStatus{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted}

	allowed := map[AppointmentStatus]map[AppointmentStatus]bool{
		StatusPending:   {StatusConfirmed: true, StatusCancelled: true},
		StatusConfirmed: {StatusCompleted: true, StatusCancelled: true},
		StatusCancelled: {},
		StatusCompleted: {},
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[from][to]
			if got := from.CanTransitionTo(to); got != want {
				t.Errorf("CanTransitionTo(%q -> %q): expected %v, got %v", from, to, want, got)
			}
		}
	}
}

func TestAppointmentTypeIsValid(t *testing.T) {
	if !TypeInPerson.IsValid() || !TypeVideo.IsValid() {
		t.Fatal("expected in-person and video to be valid types")
	}
	if AppointmentType("phone").IsValid() {
		t.Fatal("expected unknown type to be invalid")
	}
}
