package scheduling

import (
	"context"

	"mindloo/models"
)

// SchedulingService reconciles therapist working hours against booked slots
// and keeps appointments in sync with the unavailability store.
type SchedulingService interface {
	// Appointments.
	CreateAppointment(ctx context.Context, req models.CreateAppointmentRequest) (*models.Appointment, error)
	GetAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error)
	ListAppointments(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error)
	UpdateAppointment(ctx context.Context, appointmentID string, patch models.UpdateAppointmentRequest) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, appointmentID string) error

	// Declared working hours.
	GetWorkTime(ctx context.Context, therapistID string) (*models.TherapistAvailability, error)
	InsertWorkTime(ctx context.Context, therapistID, date string, slots []models.TimeSlot) (*models.TherapistAvailability, bool, error)
	DeleteWorkTime(ctx context.Context, therapistID, date string, slots []models.TimeSlot) (*models.TherapistAvailability, error)

	// Booked/blocked intervals.
	GetUnavailability(ctx context.Context, therapistID string) (*models.TherapistUnavailability, error)
	InsertUnavailability(ctx context.Context, therapistID, date string, slots []models.TimeSlot) (*models.TherapistUnavailability, bool, error)
	DeleteUnavailability(ctx context.Context, therapistID, date string, slots []models.TimeSlot) (*models.TherapistUnavailability, error)
}
