// Package tasks builds and schedules the asynchronous jobs backing the
// booking flow, currently just appointment reminders pushed through asynq.
package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"mindloo/models"
)

const TypeAppointmentReminder = "appointment:reminder"

// ReminderTaskID derives the stable task id for an appointment, letting a
// later cancellation find the queued task.
func ReminderTaskID(appointmentID string) string {
	return "reminder:" + appointmentID
}

// NewAppointmentReminderTask builds the queued task and its scheduling options.
func NewAppointmentReminderTask(p models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode reminder payload: %w", err)
	}
	opts := []asynq.Option{
		asynq.TaskID(ReminderTaskID(p.AppointmentID)),
		asynq.ProcessAt(fireAt),
	}
	return asynq.NewTask(TypeAppointmentReminder, b), opts, nil
}

// ReminderScheduler queues appointment reminders on redis via asynq. Lead is
// how far before the appointment start the reminder fires.
type ReminderScheduler struct {
	client    *asynq.Client
	inspector *asynq.Inspector
	lead      time.Duration
}

func NewReminderScheduler(redisOpt asynq.RedisClientOpt, lead time.Duration) *ReminderScheduler {
	return &ReminderScheduler{
		client:    asynq.NewClient(redisOpt),
		inspector: asynq.NewInspector(redisOpt),
		lead:      lead,
	}
}

// Schedule queues a reminder lead time before the appointment starts. Bookings
// already inside the lead window get no reminder.
func (s *ReminderScheduler) Schedule(ctx context.Context, appt *models.Appointment) error {
	startsAt, err := time.ParseInLocation("2006-01-02 15:04", appt.Date+" "+appt.TimeSlot.Start, time.Local)
	if err != nil {
		return fmt.Errorf("failed to parse appointment start %q %q: %w", appt.Date, appt.TimeSlot.Start, err)
	}

	fireAt := startsAt.Add(-s.lead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	task, opts, err := NewAppointmentReminderTask(models.ReminderPayload{
		AppointmentID: appt.AppointmentID,
		TherapistID:   appt.TherapistID,
		PatientID:     appt.PatientID,
		Date:          appt.Date,
		Start:         appt.TimeSlot.Start,
		Subject:       appt.Subject,
	}, fireAt)
	if err != nil {
		return err
	}

	if _, err := s.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// Cancel drops the queued reminder for an appointment. A reminder that never
// existed or already fired is not an error.
func (s *ReminderScheduler) Cancel(ctx context.Context, appointmentID string) error {
	err := s.inspector.DeleteTask("default", ReminderTaskID(appointmentID))
	if err != nil && !errors.Is(err, asynq.ErrTaskNotFound) {
		return fmt.Errorf("failed to delete queued reminder: %w", err)
	}
	return nil
}

// Close releases the underlying redis connections.
func (s *ReminderScheduler) Close() error {
	if err := s.inspector.Close(); err != nil {
		return err
	}
	return s.client.Close()
}
