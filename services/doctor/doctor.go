package doctor

import (
	"fmt"
	"time"

	"opdflow/models"
	"opdflow/services/availability"
	"opdflow/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const (
	defaultSlotDuration = 30 // minutes

	dateLayout = "2006-01-02"
)

// validateSessions rejects schedules the slot derivation could never walk:
// unknown weekdays, unparseable clock values or inverted intervals.
func validateSessions(sessions []models.WeeklySession) error {
	for _, s := range sessions {
		if _, ok := availability.NormalizeDay(s.Day); !ok {
			return ValidationError{Msg: fmt.Sprintf("unknown weekday %q", s.Day)}
		}
		start, err := time.Parse("15:04", s.StartTime)
		if err != nil {
			return ValidationError{Msg: fmt.Sprintf("invalid startTime %q, expected HH:MM", s.StartTime)}
		}
		end, err := time.Parse("15:04", s.EndTime)
		if err != nil {
			return ValidationError{Msg: fmt.Sprintf("invalid endTime %q, expected HH:MM", s.EndTime)}
		}
		if !start.Before(end) {
			return ValidationError{Msg: fmt.Sprintf("session on %s must start before it ends", s.Day)}
		}
	}
	return nil
}

// Register creates the doctor profile owned by the given user and flips the
// owning user's doctor flag. A user owns at most one profile.
func (s *DefaultDoctorService) Register(userID string, in models.DoctorRegistration) (*models.Doctor, error) {
	logger := utils.GetLogger()

	if userID == "" {
		return nil, ValidationError{Msg: "caller identity is required"}
	}
	existing, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}
	if existing != nil {
		return nil, ValidationError{Msg: "user already has a doctor profile"}
	}

	if in.Experience == nil || *in.Experience < 0 {
		return nil, ValidationError{Msg: "experience must be zero or more years"}
	}
	if err := validateSessions(in.Timings); err != nil {
		return nil, err
	}
	if in.SlotDuration < 0 {
		return nil, ValidationError{Msg: "slotDuration must be positive"}
	}
	if in.SlotDuration == 0 {
		in.SlotDuration = defaultSlotDuration
	}

	doc := &models.Doctor{
		ID:              uuid.New().String(),
		UserID:          userID,
		Hospital:        in.Hospital,
		Degree:          in.Degree,
		Specialization:  in.Specialization,
		Experience:      *in.Experience,
		Location:        in.Location,
		Timings:         in.Timings,
		SlotDuration:    in.SlotDuration,
		Status:          models.DoctorActive,
		ConsultationFee: in.ConsultationFee,
		Bio:             in.Bio,
	}
	if err := s.Repo.Create(doc); err != nil {
		return nil, fmt.Errorf("failed to create doctor profile: %w", err)
	}

	if err := s.Users.UpdateSetDocument(userID, bson.M{"isDoctor": true, "doctorId": doc.ID}); err != nil {
		logger.Warn("failed to flag user as doctor",
			zap.String("userID", userID), zap.Error(err))
	}

	logger.Info("doctor profile created",
		zap.String("doctorID", doc.ID),
		zap.String("specialization", doc.Specialization),
	)
	return doc, nil
}

// List returns active doctors, optionally filtered by specialization.
func (s *DefaultDoctorService) List(specialization string) ([]models.Doctor, error) {
	return s.Repo.GetActive(specialization)
}

func (s *DefaultDoctorService) GetByID(id string) (*models.Doctor, error) {
	doc, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctor: %w", err)
	}
	if doc == nil {
		return nil, NotFoundError{ID: id}
	}
	return doc, nil
}

func (s *DefaultDoctorService) GetByUserID(userID string) (*models.Doctor, error) {
	doc, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctor profile: %w", err)
	}
	if doc == nil {
		return nil, NotFoundError{}
	}
	return doc, nil
}

// Update applies a partial profile patch to the caller's own profile.
func (s *DefaultDoctorService) Update(userID string, in models.DoctorUpdate) (*models.Doctor, error) {
	doc, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	patch := bson.M{}
	if in.Hospital != "" {
		patch["hospital"] = in.Hospital
	}
	if in.Degree != "" {
		patch["degree"] = in.Degree
	}
	if in.Specialization != "" {
		patch["specialization"] = in.Specialization
	}
	if in.Experience != nil {
		if *in.Experience < 0 {
			return nil, ValidationError{Msg: "experience must be zero or more years"}
		}
		patch["experience"] = *in.Experience
	}
	if in.Location != "" {
		patch["location"] = in.Location
	}
	if in.ConsultationFee != nil {
		if *in.ConsultationFee < 0 {
			return nil, ValidationError{Msg: "consultationFee must not be negative"}
		}
		patch["consultationFee"] = *in.ConsultationFee
	}
	if in.Bio != nil {
		patch["bio"] = *in.Bio
	}
	if len(patch) == 0 {
		return doc, nil
	}

	if err := s.Repo.UpdateSetDocument(doc.ID, patch); err != nil {
		return nil, fmt.Errorf("failed to update doctor profile: %w", err)
	}
	return s.GetByID(doc.ID)
}

// UpdateTimings replaces the weekly schedule wholesale. Already booked
// appointments are untouched; only future slot derivation changes.
func (s *DefaultDoctorService) UpdateTimings(userID string, in models.TimingsUpdate) (*models.Doctor, error) {
	doc, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	if err := validateSessions(in.Timings); err != nil {
		return nil, err
	}
	if in.SlotDuration < 0 {
		return nil, ValidationError{Msg: "slotDuration must be positive"}
	}

	patch := bson.M{"timings": in.Timings}
	if in.SlotDuration > 0 {
		patch["slotDuration"] = in.SlotDuration
	}
	if err := s.Repo.UpdateSetDocument(doc.ID, patch); err != nil {
		return nil, fmt.Errorf("failed to update doctor timings: %w", err)
	}
	return s.GetByID(doc.ID)
}

// SetProfileImage records the storage public ID of an uploaded avatar.
func (s *DefaultDoctorService) SetProfileImage(userID, publicID string) error {
	doc, err := s.GetByUserID(userID)
	if err != nil {
		return err
	}
	if err := s.Repo.UpdateSetDocument(doc.ID, bson.M{"profileImage": publicID}); err != nil {
		return fmt.Errorf("failed to set profile image: %w", err)
	}
	return nil
}

// GetSlots derives the doctor's bookable slots for a calendar date. A date
// outside the doctor's working weekdays yields an empty list, not an error.
func (s *DefaultDoctorService) GetSlots(id, date string) ([]models.Slot, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, ValidationError{Msg: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date)}
	}

	doc, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	return availability.DeriveSlots(doc.Timings, doc.SlotDuration, day), nil
}
