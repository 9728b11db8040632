package doctor

import (
	"testing"

	"opdflow/models"
)

func TestValidateSessions(t *testing.T) {
	cases := []struct {
		name     string
		sessions []models.WeeklySession
		wantErr  bool
	}{
		{
			name:     "empty schedule is valid",
			sessions: nil,
			wantErr:  false,
		},
		{
			name: "well formed session",
			sessions: []models.WeeklySession{
				{Day: "Monday", StartTime: "09:00", EndTime: "12:00"},
			},
			wantErr: false,
		},
		{
			name: "abbreviated weekday",
			sessions: []models.WeeklySession{
				{Day: "Tue", StartTime: "14:00", EndTime: "17:00"},
			},
			wantErr: false,
		},
		{
			name: "unknown weekday",
			sessions: []models.WeeklySession{
				{Day: "Holiday", StartTime: "09:00", EndTime: "12:00"},
			},
			wantErr: true,
		},
		{
			name: "malformed start time",
			sessions: []models.WeeklySession{
				{Day: "Monday", StartTime: "9am", EndTime: "12:00"},
			},
			wantErr: true,
		},
		{
			name: "inverted interval",
			sessions: []models.WeeklySession{
				{Day: "Monday", StartTime: "12:00", EndTime: "09:00"},
			},
			wantErr: true,
		},
		{
			name: "zero length interval",
			sessions: []models.WeeklySession{
				{Day: "Monday", StartTime: "09:00", EndTime: "09:00"},
			},
			wantErr: true,
		},
		{
			name: "one bad session fails the whole schedule",
			sessions: []models.WeeklySession{
				{Day: "Monday", StartTime: "09:00", EndTime: "12:00"},
				{Day: "Funday", StartTime: "09:00", EndTime: "12:00"},
			},
			wantErr: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := validateSessions(c.sessions)
			if c.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !c.wantErr && err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if c.wantErr {
				if _, ok := err.(ValidationError); !ok {
					t.Fatalf("expected ValidationError, got %T", err)
				}
			}
		})
	}
}
