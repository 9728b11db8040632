package doctor

import (
	doctorRepo "opdflow/database/repository/doctor"
	userRepo "opdflow/database/repository/user"
	"opdflow/models"
)

// DoctorService manages doctor profiles, their recurring weekly schedules and
// the bookable slots derived from them.
type DoctorService interface {
	Register(userID string, in models.DoctorRegistration) (*models.Doctor, error)
	List(specialization string) ([]models.Doctor, error)
	GetByID(id string) (*models.Doctor, error)
	GetByUserID(userID string) (*models.Doctor, error)
	Update(userID string, in models.DoctorUpdate) (*models.Doctor, error)
	UpdateTimings(userID string, in models.TimingsUpdate) (*models.Doctor, error)
	SetProfileImage(userID, publicID string) error
	GetSlots(id, date string) ([]models.Slot, error)
}

// DefaultDoctorService is the production implementation.
type DefaultDoctorService struct {
	Repo  doctorRepo.DoctorRepository
	Users userRepo.UserRepository
}
