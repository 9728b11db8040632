// Package payment collects consultation fees through Stripe PaymentIntents.
// Payment state is orthogonal to the appointment lifecycle and never gates a
// status transition.
package payment

import (
	"context"
	"fmt"

	"opdflow/config"
	appointmentRepo "opdflow/database/repository/appointment"
	doctorRepo "opdflow/database/repository/doctor"
	"opdflow/models"
	"opdflow/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentService creates and settles consultation fee payments.
type PaymentService interface {
	CreateIntent(ctx context.Context, patientID string, req models.PaymentIntentRequest) (*models.PaymentIntentResponse, error)
	Confirm(ctx context.Context, patientID string, req models.PaymentConfirmation) (*models.Appointment, error)
}

// StripePaymentService is the production implementation.
type StripePaymentService struct {
	Appointments appointmentRepo.AppointmentRepository
	Doctors      doctorRepo.DoctorRepository
}

// ValidationError rejects a payment request before any gateway call.
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string {
	return e.Msg
}

// NotFoundError signals an unknown appointment reference.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("appointment %s not found", e.ID)
}

// appointmentFor loads the appointment and checks the caller owns it.
func (s *StripePaymentService) appointmentFor(ctx context.Context, patientID, appointmentID string) (*models.Appointment, error) {
	appt, err := s.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment: %w", err)
	}
	if appt == nil || appt.PatientID != patientID {
		return nil, NotFoundError{ID: appointmentID}
	}
	return appt, nil
}

// CreateIntent opens a PaymentIntent for the doctor's consultation fee and
// hands the client secret back for collection on the client.
func (s *StripePaymentService) CreateIntent(ctx context.Context, patientID string, req models.PaymentIntentRequest) (*models.PaymentIntentResponse, error) {
	appt, err := s.appointmentFor(ctx, patientID, req.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appt.PaymentStatus == models.PaymentPaid {
		return nil, ValidationError{Msg: "appointment is already paid"}
	}

	doctor, err := s.Doctors.GetByID(appt.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve doctor: %w", err)
	}
	if doctor == nil || doctor.ConsultationFee <= 0 {
		return nil, ValidationError{Msg: "doctor has no consultation fee configured"}
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(doctor.ConsultationFee),
		Currency: stripe.String(config.AppConfig.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Description: stripe.String(fmt.Sprintf("Consultation on %s at %s", appt.Date, appt.Time)),
	}
	params.AddMetadata("appointmentId", appt.ID)
	params.AddMetadata("patientId", patientID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	utils.GetLogger().Info("payment intent created",
		zap.String("appointmentID", appt.ID),
		zap.String("paymentID", pi.ID),
		zap.Int64("amount", pi.Amount),
	)

	return &models.PaymentIntentResponse{
		PaymentID:    pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
	}, nil
}

// Confirm re-reads the PaymentIntent from Stripe and records the verified
// outcome on the appointment. The gateway is the source of truth; the client
// claim alone never marks an appointment paid.
func (s *StripePaymentService) Confirm(ctx context.Context, patientID string, req models.PaymentConfirmation) (*models.Appointment, error) {
	logger := utils.GetLogger()

	appt, err := s.appointmentFor(ctx, patientID, req.AppointmentID)
	if err != nil {
		return nil, err
	}

	pi, err := paymentintent.Get(req.PaymentID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment intent: %w", err)
	}
	if pi.Metadata["appointmentId"] != appt.ID {
		return nil, ValidationError{Msg: "payment does not belong to this appointment"}
	}

	status := models.PaymentFailed
	if pi.Status == stripe.PaymentIntentStatusSucceeded {
		status = models.PaymentPaid
	}

	if err := s.Appointments.SetPayment(ctx, appt.ID, status, pi.ID); err != nil {
		return nil, fmt.Errorf("failed to record payment outcome: %w", err)
	}
	appt.PaymentStatus = status
	appt.PaymentID = pi.ID

	logger.Info("payment settled",
		zap.String("appointmentID", appt.ID),
		zap.String("paymentID", pi.ID),
		zap.String("outcome", string(status)),
	)
	return appt, nil
}
