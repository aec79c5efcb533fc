package appointmentRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"mindloo/models"
)

// AppointmentRepository defines methods for appointment data access.
// Lookups return (nil, nil) when no matching document exists.
type AppointmentRepository interface {
	Insert(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	Find(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error)
	// UpdateByID applies a $set patch and returns the updated document.
	UpdateByID(ctx context.Context, appointmentID string, patch bson.M) (*models.Appointment, error)
	// DeleteByID removes the appointment and returns it, so the caller can
	// retract the matching unavailability slot.
	DeleteByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
}
