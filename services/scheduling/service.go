package scheduling

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	appointmentRepo "mindloo/database/repository/appointment"
	scheduleRepo "mindloo/database/repository/schedule"
	"mindloo/models"
)

// ReminderScheduler queues a patient reminder for a booked appointment and
// retracts it when the appointment goes away. Both calls are best-effort from
// the booking path: a failure is logged, never surfaced to the caller.
type ReminderScheduler interface {
	Schedule(ctx context.Context, appt *models.Appointment) error
	Cancel(ctx context.Context, appointmentID string) error
}

// DefaultSchedulingService is the production implementation backed by the
// mongo repositories. NewID is injectable so tests can pin generated ids.
type DefaultSchedulingService struct {
	AvailabilityRepo   scheduleRepo.AvailabilityRepository
	UnavailabilityRepo scheduleRepo.UnavailabilityRepository
	AppointmentRepo    appointmentRepo.AppointmentRepository

	// Locks serializes booking-path mutations per therapist. Required: the
	// booked-slot check and the unavailability write are separate store
	// round-trips, so without it two concurrent requests can both pass the
	// check and double-book.
	Locks *TherapistLocks

	// Cache, when set, serves GetWorkTime/GetUnavailability reads and is
	// invalidated on every mutation. The booking path reads the store
	// directly.
	Cache    *redis.Client
	CacheTTL time.Duration

	// Reminders, when set, gets a Schedule call after each booking and a
	// Cancel after each deletion.
	Reminders ReminderScheduler

	NewID func() (string, error)
}

// NewDefaultSchedulingService wires the service with its default id generator
// and lock table.
func NewDefaultSchedulingService(
	avail scheduleRepo.AvailabilityRepository,
	unavail scheduleRepo.UnavailabilityRepository,
	appts appointmentRepo.AppointmentRepository,
) *DefaultSchedulingService {
	return &DefaultSchedulingService{
		AvailabilityRepo:   avail,
		UnavailabilityRepo: unavail,
		AppointmentRepo:    appts,
		Locks:              NewTherapistLocks(),
		NewID:              GenerateAppointmentID,
	}
}

// WithReminders enables reminder queueing on the booking path.
func (s *DefaultSchedulingService) WithReminders(r ReminderScheduler) *DefaultSchedulingService {
	s.Reminders = r
	return s
}

// GenerateAppointmentID returns a 128-bit random hex token.
func GenerateAppointmentID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate appointment id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func (s *DefaultSchedulingService) newID() (string, error) {
	if s.NewID != nil {
		return s.NewID()
	}
	return GenerateAppointmentID()
}

func (s *DefaultSchedulingService) lock(therapistID string) func() {
	if s.Locks == nil {
		return func() {}
	}
	return s.Locks.Lock(therapistID)
}
