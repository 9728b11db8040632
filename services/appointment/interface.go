package appointment

import (
	"context"

	appointmentRepo "opdflow/database/repository/appointment"
	doctorRepo "opdflow/database/repository/doctor"
	"opdflow/models"
	"opdflow/services/meeting"
	"opdflow/services/notification"
)

// ReminderScheduler enqueues a reminder for a confirmed appointment.
type ReminderScheduler interface {
	EnqueueReminder(appt models.Appointment) error
}

// AppointmentService owns the appointment lifecycle: creation, the status
// state machine, temporal classification for listings, and dashboard stats.
type AppointmentService interface {
	Create(ctx context.Context, patientID string, in models.BookingInput) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) (*models.Appointment, error)
	ListForPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	ListForDoctor(ctx context.Context, doctorUserID string) ([]models.Appointment, error)
	PatientStats(ctx context.Context, patientID string) (*models.PatientStats, error)
	DoctorStats(ctx context.Context, doctorUserID string) (*models.DoctorStats, error)
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Repo       appointmentRepo.AppointmentRepository
	DoctorRepo doctorRepo.DoctorRepository
	Meetings   meeting.Service
	// Notifier and Reminders are optional; status changes are applied even
	// when pushes or reminder scheduling fail.
	Notifier  notification.NotificationService
	Reminders ReminderScheduler
}
