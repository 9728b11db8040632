package appointment

import (
	"context"
	"fmt"
	"time"

	"opdflow/models"
	"opdflow/utils"

	"go.uber.org/zap"
)

// validateBooking checks required fields and formats before any persistence
// attempt; a failure here leaves no partial state behind.
func validateBooking(in *models.BookingInput) error {
	switch {
	case in.DoctorID == "":
		return ValidationError{Msg: "doctorId is required"}
	case in.PatientName == "":
		return ValidationError{Msg: "patientName is required"}
	case in.PatientEmail == "":
		return ValidationError{Msg: "patientEmail is required"}
	case in.PatientPhone == "":
		return ValidationError{Msg: "patientPhone is required"}
	case in.Date == "":
		return ValidationError{Msg: "date is required"}
	case in.Time == "":
		return ValidationError{Msg: "time is required"}
	case in.Reason == "":
		return ValidationError{Msg: "reason is required"}
	}

	if _, err := time.Parse(dateLayout, in.Date); err != nil {
		return ValidationError{Msg: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", in.Date)}
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return ValidationError{Msg: fmt.Sprintf("invalid time %q, expected HH:MM", in.Time)}
	}

	if in.Type == "" {
		in.Type = models.TypeInPerson
	}
	if !in.Type.IsValid() {
		return ValidationError{Msg: fmt.Sprintf("invalid appointment type %q", in.Type)}
	}
	return nil
}

// Create books a new appointment for the identified patient. The doctor must
// resolve, the record starts in pending status, and video consultations get
// a meeting link allocated before the record is persisted.
func (s *DefaultAppointmentService) Create(ctx context.Context, patientID string, in models.BookingInput) (*models.Appointment, error) {
	logger := utils.GetLogger()

	if patientID == "" {
		return nil, ValidationError{Msg: "caller identity is required"}
	}
	if err := validateBooking(&in); err != nil {
		return nil, err
	}

	doctor, err := s.DoctorRepo.GetByID(in.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve doctor: %w", err)
	}
	if doctor == nil {
		return nil, NotFoundError{Resource: "doctor", ID: in.DoctorID}
	}

	appt := &models.Appointment{
		PatientID:     patientID,
		DoctorID:      doctor.ID,
		PatientName:   in.PatientName,
		PatientEmail:  in.PatientEmail,
		PatientPhone:  in.PatientPhone,
		Date:          in.Date,
		Time:          in.Time,
		Reason:        in.Reason,
		Type:          in.Type,
		Status:        models.StatusPending,
		PaymentStatus: models.PaymentPending,
	}

	// A verified payment supplied with the booking marks the record paid at
	// creation; otherwise the payment collaborator settles it later.
	if in.PaymentID != "" {
		appt.PaymentStatus = models.PaymentPaid
		appt.PaymentID = in.PaymentID
	}

	if in.Type == models.TypeVideo {
		appt.MeetingLink = s.Meetings.AllocateLink()
	}

	if err := s.Repo.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	logger.Info("appointment created",
		zap.String("appointmentID", appt.ID),
		zap.String("doctorID", appt.DoctorID),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time),
		zap.String("type", string(appt.Type)),
	)
	return appt, nil
}

// UpdateStatus applies a status change. The target must be one of the four
// enumerated values; beyond that the write is last-write-wins. Transitions
// that leave the canonical lifecycle graph are logged, not rejected.
func (s *DefaultAppointmentService) UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) (*models.Appointment, error) {
	logger := utils.GetLogger()

	if !status.IsValid() {
		return nil, ValidationError{Msg: fmt.Sprintf("invalid status %q", status)}
	}

	appt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment: %w", err)
	}
	if appt == nil {
		return nil, NotFoundError{Resource: "appointment", ID: id}
	}

	if appt.Status != status && !appt.Status.CanTransitionTo(status) {
		logger.Warn("appointment status transition outside lifecycle graph",
			zap.String("appointmentID", id),
			zap.String("from", string(appt.Status)),
			zap.String("to", string(status)),
		)
	}

	if err := s.Repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to update appointment status: %w", err)
	}
	appt.Status = status
	appt.UpdatedAt = time.Now()

	s.afterStatusChange(ctx, *appt)
	return appt, nil
}

// afterStatusChange fans out side effects that must not block or fail the
// status write itself.
func (s *DefaultAppointmentService) afterStatusChange(ctx context.Context, appt models.Appointment) {
	logger := utils.GetLogger()

	if s.Notifier != nil {
		var title, body string
		switch appt.Status {
		case models.StatusConfirmed:
			title = "Appointment confirmed"
			body = fmt.Sprintf("Your appointment on %s at %s has been confirmed.", appt.Date, appt.Time)
		case models.StatusCancelled:
			title = "Appointment cancelled"
			body = fmt.Sprintf("Your appointment on %s at %s has been cancelled.", appt.Date, appt.Time)
		}
		if title != "" {
			data := map[string]string{"appointmentId": appt.ID, "status": string(appt.Status)}
			if err := s.Notifier.SendUserPush(ctx, appt.PatientID, title, body, data); err != nil {
				logger.Warn("failed to push appointment status change",
					zap.String("appointmentID", appt.ID), zap.Error(err))
			}
		}
	}

	if s.Reminders != nil && appt.Status == models.StatusConfirmed {
		if err := s.Reminders.EnqueueReminder(appt); err != nil {
			logger.Warn("failed to schedule appointment reminder",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}
}

// ListForPatient returns all of a patient's appointments, newest date first.
// Temporal bucketing is derived by the caller via Classify/Partition.
func (s *DefaultAppointmentService) ListForPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return s.Repo.GetByPatient(ctx, patientID)
}

// ListForDoctor returns all appointments for the doctor profile owned by the
// given user.
func (s *DefaultAppointmentService) ListForDoctor(ctx context.Context, doctorUserID string) ([]models.Appointment, error) {
	doctor, err := s.DoctorRepo.GetByUserID(doctorUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve doctor profile: %w", err)
	}
	if doctor == nil {
		return nil, NotFoundError{Resource: "doctor profile"}
	}
	return s.Repo.GetByDoctor(ctx, doctor.ID)
}
