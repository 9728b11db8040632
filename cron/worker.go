package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"opdflow/config"
	appointmentRepo "opdflow/database/repository/appointment"
	"opdflow/models"
	"opdflow/services/notification"

	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifSvc notification.NotificationService, appts appointmentRepo.AppointmentRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAppointmentReminder, handleReminderTask(notifSvc, appts))

	// Start async worker with retry logic.
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleReminderTask re-reads the appointment at fire time so reminders for
// bookings cancelled or completed since scheduling are dropped.
func handleReminderTask(notifSvc notification.NotificationService, appts appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		appt, err := appts.GetByID(ctx, p.AppointmentID)
		if err != nil {
			log.Printf("[ReminderHandler] failed to load appointment %s: %v", p.AppointmentID, err)
			return err
		}
		if appt == nil || appt.Status != models.StatusConfirmed {
			return nil
		}

		if err := notifSvc.SendReminder(ctx, *appt); err != nil {
			log.Printf("[ReminderHandler] failed to send reminder for %s: %v", appt.ID, err)
			return err
		}
		return nil
	}
}
