package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"opdflow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoAppointmentRepo) findSorted(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

// GetByPatient returns all of a patient's appointments, newest date first.
func (r *mongoAppointmentRepo) GetByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return r.findSorted(ctx, bson.M{"patientId": patientID})
}

// GetByDoctor returns all of a doctor's appointments, newest date first.
func (r *mongoAppointmentRepo) GetByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return r.findSorted(ctx, bson.M{"doctorId": doctorID})
}

func (r *mongoAppointmentRepo) count(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}
	return n, nil
}

func (r *mongoAppointmentRepo) distinct(ctx context.Context, field string, filter bson.M) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	values, err := r.coll.Distinct(ctx, field, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to collect distinct %s: %w", field, err)
	}
	return len(values), nil
}

// upcomingFilter matches appointments on or after fromDate that are still in
// a live (pending or confirmed) state. Dates are "2006-01-02" strings, so
// lexicographic comparison matches chronological order.
func upcomingFilter(key, id, fromDate string) bson.M {
	return bson.M{
		key:      id,
		"date":   bson.M{"$gte": fromDate},
		"status": bson.M{"$in": []models.AppointmentStatus{models.StatusPending, models.StatusConfirmed}},
	}
}

func (r *mongoAppointmentRepo) CountByPatient(ctx context.Context, patientID string) (int64, error) {
	return r.count(ctx, bson.M{"patientId": patientID})
}

func (r *mongoAppointmentRepo) CountUpcomingByPatient(ctx context.Context, patientID, fromDate string) (int64, error) {
	return r.count(ctx, upcomingFilter("patientId", patientID, fromDate))
}

func (r *mongoAppointmentRepo) DistinctDoctors(ctx context.Context, patientID string) (int, error) {
	return r.distinct(ctx, "doctorId", bson.M{"patientId": patientID})
}

func (r *mongoAppointmentRepo) CountByDoctor(ctx context.Context, doctorID string) (int64, error) {
	return r.count(ctx, bson.M{"doctorId": doctorID})
}

func (r *mongoAppointmentRepo) CountUpcomingByDoctor(ctx context.Context, doctorID, fromDate string) (int64, error) {
	return r.count(ctx, upcomingFilter("doctorId", doctorID, fromDate))
}

func (r *mongoAppointmentRepo) DistinctPatients(ctx context.Context, doctorID string) (int, error) {
	return r.distinct(ctx, "patientId", bson.M{"doctorId": doctorID})
}
