package doctorRepo

import (
	"opdflow/models"

	"go.mongodb.org/mongo-driver/bson"
)

// DoctorRepository defines methods for doctor profile data access.
type DoctorRepository interface {
	// Create inserts a new doctor profile.
	Create(doctor *models.Doctor) error
	// GetByID retrieves a doctor by its unique ID.
	GetByID(id string) (*models.Doctor, error)
	// GetByUserID retrieves the doctor profile owned by a user; nil if none.
	GetByUserID(userID string) (*models.Doctor, error)
	// GetActive retrieves all active doctors, optionally filtered by
	// specialization, newest first.
	GetActive(specialization string) ([]models.Doctor, error)
	// UpdateSetDocument applies a $set patch to a doctor record.
	UpdateSetDocument(id string, updateDoc bson.M) error
}
