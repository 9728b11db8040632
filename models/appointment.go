package models

import "time"

// AppointmentStatus is the lifecycle state of a booked appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// IsValid reports whether s is one of the four enumerated statuses.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// CanTransitionTo reports whether moving to target follows the canonical
// lifecycle graph (pending -> confirmed/cancelled -> completed). Status
// updates are applied regardless; callers log violations instead of
// rejecting them.
func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	if !target.IsValid() {
		return false
	}
	switch s {
	case StatusPending:
		return target == StatusConfirmed || target == StatusCancelled
	case StatusConfirmed:
		return target == StatusCompleted || target == StatusCancelled
	default:
		// cancelled and completed are terminal.
		return false
	}
}

// PaymentStatus tracks the payment collaborator's outcome. It is orthogonal
// to the appointment status and never gates a lifecycle transition.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

func (p PaymentStatus) IsValid() bool {
	return p == PaymentPending || p == PaymentPaid || p == PaymentFailed
}

// AppointmentType distinguishes in-person visits from video consultations.
type AppointmentType string

const (
	TypeInPerson AppointmentType = "in-person"
	TypeVideo    AppointmentType = "video"
)

func (t AppointmentType) IsValid() bool {
	return t == TypeInPerson || t == TypeVideo
}

// Appointment is a persisted booking linking one patient and one doctor to a
// specific date and slot time. Records are never deleted, only
// status-transitioned.
type Appointment struct {
	ID            string            `bson:"id" json:"id"`
	PatientID     string            `bson:"patientId" json:"patientId"`
	DoctorID      string            `bson:"doctorId" json:"doctorId"`
	PatientName   string            `bson:"patientName" json:"patientName"`
	PatientEmail  string            `bson:"patientEmail" json:"patientEmail"`
	PatientPhone  string            `bson:"patientPhone" json:"patientPhone"`
	Date          string            `bson:"date" json:"date"` // "2006-01-02"
	Time          string            `bson:"time" json:"time"` // chosen slot start, "15:04"
	Reason        string            `bson:"reason" json:"reason"`
	Type          AppointmentType   `bson:"type" json:"type"`
	Status        AppointmentStatus `bson:"status" json:"status"`
	PaymentStatus PaymentStatus     `bson:"paymentStatus" json:"paymentStatus"`
	PaymentID     string            `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	MeetingLink   string            `bson:"meetingLink,omitempty" json:"meetingLink,omitempty"`
	CreatedAt     time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// BookingInput is the payload for creating an appointment.
type BookingInput struct {
	DoctorID     string          `json:"doctorId" binding:"required"`
	PatientName  string          `json:"patientName" binding:"required"`
	PatientEmail string          `json:"patientEmail" binding:"required"`
	PatientPhone string          `json:"patientPhone" binding:"required"`
	Date         string          `json:"date" binding:"required"` // "2006-01-02"
	Time         string          `json:"time" binding:"required"` // "15:04"
	Reason       string          `json:"reason" binding:"required"`
	Type         AppointmentType `json:"type"`
	// PaymentID, when set, must reference a payment the payment collaborator
	// has already verified; the appointment is then created with
	// paymentStatus "paid".
	PaymentID string `json:"paymentId"`
}

// PatientStats summarizes a patient's booking history for the dashboard.
type PatientStats struct {
	Total          int64 `json:"total"`
	Upcoming       int64 `json:"upcoming"`
	DoctorsVisited int   `json:"doctorsVisited"`
}

// DoctorStats summarizes a doctor's appointment load.
type DoctorStats struct {
	Total          int64 `json:"total"`
	Upcoming       int64 `json:"upcoming"`
	ActivePatients int   `json:"activePatients"`
}
