package appointmentRepo

import (
	"context"
	"fmt"

	"opdflow/database"
	"opdflow/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentRepository defines data access for appointment records.
// Appointments are never deleted; every mutation is a single-record write.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error
	SetPayment(ctx context.Context, id string, status models.PaymentStatus, paymentID string) error
	GetByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	GetByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)

	// Dashboard aggregates.
	CountByPatient(ctx context.Context, patientID string) (int64, error)
	CountUpcomingByPatient(ctx context.Context, patientID, fromDate string) (int64, error)
	DistinctDoctors(ctx context.Context, patientID string) (int, error)
	CountByDoctor(ctx context.Context, doctorID string) (int64, error)
	CountUpcomingByDoctor(ctx context.Context, doctorID, fromDate string) (int64, error)
	DistinctPatients(ctx context.Context, doctorID string) (int, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	repo := &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		fmt.Printf("failed to create appointment indexes: %v\n", err)
	}
	return repo
}
