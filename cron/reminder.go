package cron

import (
	"encoding/json"
	"fmt"
	"time"

	"opdflow/config"
	"opdflow/models"

	"github.com/hibiken/asynq"
)

const TypeAppointmentReminder = "appointment:reminder"

// reminderLead is how long before the slot the patient is pinged.
const reminderLead = time.Hour

// ReminderClient enqueues reminder tasks for confirmed appointments.
type ReminderClient struct {
	client *asynq.Client
}

// NewReminderClient connects to the reminder queue.
func NewReminderClient() *ReminderClient {
	return &ReminderClient{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderDB,
		}),
	}
}

// EnqueueReminder schedules a reminder one hour before the appointment slot.
// Appointments whose reminder moment already passed are skipped silently.
func (r *ReminderClient) EnqueueReminder(appt models.Appointment) error {
	slotAt, err := time.ParseInLocation("2006-01-02 15:04", appt.Date+" "+appt.Time, time.Local)
	if err != nil {
		return fmt.Errorf("failed to parse appointment slot: %w", err)
	}

	fireAt := slotAt.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		PatientID:     appt.PatientID,
		Date:          appt.Date,
		Time:          appt.Time,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeAppointmentReminder, b)
	if _, err := r.client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
