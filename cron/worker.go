// Package cron runs the background worker consuming queued reminder tasks.
package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"mindloo/database/repository/docstore"
	"mindloo/models"
	"mindloo/services/tasks"
	"mindloo/utils"
)

// InitReminderWorker starts the asynq worker in the background. Due reminders
// are delivered as in-app messages from the therapist to the patient.
func InitReminderWorker(redisOpt asynq.RedisClientOpt, messages *docstore.Store[models.Message]) {
	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 10,
		Queues:      map[string]int{"default": 1},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAppointmentReminder, handleReminderTask(messages))

	go func() {
		logger := utils.GetLogger()
		const maxAttempts = 5
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			logger.Info("starting reminder worker", zap.Int("attempt", attempt))
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("reminder worker stopped", zap.Int("attempt", attempt), zap.Error(err))
			if attempt == maxAttempts {
				logger.Fatal("reminder worker could not be started")
			}
			time.Sleep(time.Duration(attempt*2) * time.Second)
		}
	}()
}

func handleReminderTask(messages *docstore.Store[models.Message]) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			utils.GetLogger().Error("dropping reminder with invalid payload", zap.Error(err))
			return fmt.Errorf("failed to decode reminder payload: %w", err)
		}

		subject := p.Subject
		if subject == "" {
			subject = "your appointment"
		}
		now := time.Now()
		msg := &models.Message{
			MessageID:      uuid.New().String(),
			ConversationID: p.TherapistID + ":" + p.PatientID,
			SenderID:       p.TherapistID,
			SenderType:     "therapist",
			ReceiverID:     p.PatientID,
			ReceiverType:   "patient",
			Subject:        "Appointment reminder",
			Content:        fmt.Sprintf("Reminder: %s on %s starts at %s.", subject, p.Date, p.Start),
			MessageType:    "text",
			Priority:       "high",
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := messages.Insert(ctx, msg); err != nil {
			return err
		}

		utils.GetLogger().Info("appointment reminder delivered",
			zap.String("appointmentId", p.AppointmentID),
			zap.String("patientId", p.PatientID))
		return nil
	}
}
