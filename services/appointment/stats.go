package appointment

import (
	"context"
	"fmt"
	"time"

	"opdflow/models"
)

// PatientStats aggregates the patient's dashboard counters: total bookings,
// upcoming bookings and the number of distinct doctors visited.
func (s *DefaultAppointmentService) PatientStats(ctx context.Context, patientID string) (*models.PatientStats, error) {
	today := time.Now().Format(dateLayout)

	total, err := s.Repo.CountByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to count patient appointments: %w", err)
	}
	upcoming, err := s.Repo.CountUpcomingByPatient(ctx, patientID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to count upcoming appointments: %w", err)
	}
	visited, err := s.Repo.DistinctDoctors(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to count visited doctors: %w", err)
	}

	return &models.PatientStats{
		Total:          total,
		Upcoming:       upcoming,
		DoctorsVisited: visited,
	}, nil
}

// DoctorStats aggregates the doctor's dashboard counters for the profile
// owned by the given user.
func (s *DefaultAppointmentService) DoctorStats(ctx context.Context, doctorUserID string) (*models.DoctorStats, error) {
	doctor, err := s.DoctorRepo.GetByUserID(doctorUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve doctor profile: %w", err)
	}
	if doctor == nil {
		return nil, NotFoundError{Resource: "doctor profile"}
	}

	today := time.Now().Format(dateLayout)

	total, err := s.Repo.CountByDoctor(ctx, doctor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count doctor appointments: %w", err)
	}
	upcoming, err := s.Repo.CountUpcomingByDoctor(ctx, doctor.ID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to count upcoming appointments: %w", err)
	}
	patients, err := s.Repo.DistinctPatients(ctx, doctor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count active patients: %w", err)
	}

	return &models.DoctorStats{
		Total:          total,
		Upcoming:       upcoming,
		ActivePatients: patients,
	}, nil
}
