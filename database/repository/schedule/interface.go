package scheduleRepo

import (
	"context"

	"mindloo/models"
)

// AvailabilityRepository provides access to therapist declared working hours.
// Get returns (nil, nil) when no document exists for the therapist; the
// service layer decides whether that is an error.
type AvailabilityRepository interface {
	Get(ctx context.Context, therapistID string) (*models.TherapistAvailability, error)
	Create(ctx context.Context, doc *models.TherapistAvailability) error
	// SetEntries replaces the embedded availability array, mirroring the
	// read-modify-save document update pattern.
	SetEntries(ctx context.Context, therapistID string, entries []models.DateEntry) error
	Delete(ctx context.Context, therapistID string) error
}

// UnavailabilityRepository provides access to the booked-interval documents.
// Same contract as AvailabilityRepository: a missing document is (nil, nil).
type UnavailabilityRepository interface {
	Get(ctx context.Context, therapistID string) (*models.TherapistUnavailability, error)
	Create(ctx context.Context, doc *models.TherapistUnavailability) error
	SetEntries(ctx context.Context, therapistID string, entries []models.DateEntry) error
	Delete(ctx context.Context, therapistID string) error
}
