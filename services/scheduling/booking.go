package scheduling

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"mindloo/models"
	"mindloo/utils"
)

// CreateAppointment validates the requested slot against the therapist's
// declared hours, checks it is not already booked, then records the
// appointment and mirrors the slot into the unavailability store. The
// per-therapist lock is held across the whole check-then-write sequence.
func (s *DefaultSchedulingService) CreateAppointment(ctx context.Context, req models.CreateAppointmentRequest) (*models.Appointment, error) {
	status := req.Status
	if status == "" {
		status = models.AppointmentScheduled
	}
	if !models.ValidStatus(status) {
		return nil, Invalidf("Invalid appointment status %q", status)
	}

	unlock := s.lock(req.TherapistID)
	defer unlock()

	// Step 1: the slot must fall within the therapist's declared hours.
	avail, err := s.AvailabilityRepo.Get(ctx, req.TherapistID)
	if err != nil {
		return nil, err
	}
	if avail == nil {
		return nil, NotFoundf("No availability found for therapist with ID %s", req.TherapistID)
	}

	dateEntry := models.FindDate(avail.Availability, req.Date)
	if dateEntry == nil {
		return nil, Invalidf("Therapist is not available on date %s", req.Date)
	}

	within := false
	for _, slot := range dateEntry.TimeSlots {
		if slot.Contains(req.TimeSlot) {
			within = true
			break
		}
	}
	if !within {
		return nil, Invalidf("Requested time slot is not within the therapist's availability.")
	}

	// Step 2: the exact slot must not already be booked. This is an exact
	// match, not an overlap test; see InsertUnavailability.
	unavail, err := s.UnavailabilityRepo.Get(ctx, req.TherapistID)
	if err != nil {
		return nil, err
	}
	if unavail != nil {
		if entry := models.FindDate(unavail.Unavailability, req.Date); entry != nil {
			for _, slot := range entry.TimeSlots {
				if slot.Equals(req.TimeSlot) {
					return nil, Conflictf("Time slot is already booked.")
				}
			}
		}
	}

	// Step 3: persist the appointment.
	id, err := s.newID()
	if err != nil {
		return nil, err
	}
	appt := &models.Appointment{
		AppointmentID: id,
		TherapistID:   req.TherapistID,
		PatientID:     req.PatientID,
		Date:          req.Date,
		TimeSlot:      req.TimeSlot,
		Status:        status,
		Subject:       req.Subject,
		Notes:         req.Notes,
	}
	if err := s.AppointmentRepo.Insert(ctx, appt); err != nil {
		return nil, err
	}

	// Step 4: mirror the booked slot into unavailability. On failure the
	// appointment insert is compensated so the two stores never diverge
	// silently.
	if err := s.upsertUnavailabilitySlot(ctx, unavail, req.TherapistID, req.Date, req.TimeSlot); err != nil {
		if _, delErr := s.AppointmentRepo.DeleteByID(ctx, id); delErr != nil {
			return nil, fmt.Errorf("failed to record booked slot (%w); compensation also failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("failed to record booked slot: %w", err)
	}
	s.invalidateUnavailability(ctx, req.TherapistID)

	if s.Reminders != nil {
		if err := s.Reminders.Schedule(ctx, appt); err != nil {
			utils.GetLogger().Warn("failed to queue appointment reminder",
				zap.String("appointmentId", appt.AppointmentID), zap.Error(err))
		}
	}

	return appt, nil
}

func (s *DefaultSchedulingService) upsertUnavailabilitySlot(ctx context.Context, unavail *models.TherapistUnavailability, therapistID, date string, slot models.TimeSlot) error {
	if unavail == nil {
		return s.UnavailabilityRepo.Create(ctx, &models.TherapistUnavailability{
			TherapistID:    therapistID,
			Unavailability: []models.DateEntry{{Date: date, TimeSlots: []models.TimeSlot{slot}}},
		})
	}

	if entry := models.FindDate(unavail.Unavailability, date); entry != nil {
		entry.TimeSlots = append(entry.TimeSlots, slot)
	} else {
		unavail.Unavailability = append(unavail.Unavailability, models.DateEntry{
			Date:      date,
			TimeSlots: []models.TimeSlot{slot},
		})
	}
	return s.UnavailabilityRepo.SetEntries(ctx, therapistID, unavail.Unavailability)
}

// GetAppointment fetches one appointment by id.
func (s *DefaultSchedulingService) GetAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appt, err := s.AppointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, NotFoundf("No appointment found with ID %s", appointmentID)
	}
	return appt, nil
}

// ListAppointments returns appointments matching the filter. An empty result
// is reported as not found, matching the API contract.
func (s *DefaultSchedulingService) ListAppointments(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error) {
	appts, err := s.AppointmentRepo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(appts) == 0 {
		return nil, NotFoundf("No appointments found for the given criteria")
	}
	return appts, nil
}

// UpdateAppointment patches status, subject or notes. The slot itself is
// immutable here; rescheduling is a delete followed by a new booking.
func (s *DefaultSchedulingService) UpdateAppointment(ctx context.Context, appointmentID string, patch models.UpdateAppointmentRequest) (*models.Appointment, error) {
	set := bson.M{}
	if patch.Status != nil {
		if !models.ValidStatus(*patch.Status) {
			return nil, Invalidf("Invalid appointment status %q", *patch.Status)
		}
		set["status"] = *patch.Status
	}
	if patch.Subject != nil {
		set["subject"] = *patch.Subject
	}
	if patch.Notes != nil {
		set["notes"] = *patch.Notes
	}
	if len(set) == 0 {
		return nil, Invalidf("No updatable fields provided")
	}

	appt, err := s.AppointmentRepo.UpdateByID(ctx, appointmentID, set)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, NotFoundf("No appointment found with ID %s", appointmentID)
	}
	return appt, nil
}

// DeleteAppointment removes the appointment and retracts the exact matching
// slot from the therapist's unavailability, collapsing the date entry when it
// empties.
func (s *DefaultSchedulingService) DeleteAppointment(ctx context.Context, appointmentID string) error {
	appt, err := s.AppointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appt == nil {
		return NotFoundf("Appointment with ID %s not found", appointmentID)
	}

	unlock := s.lock(appt.TherapistID)
	defer unlock()

	deleted, err := s.AppointmentRepo.DeleteByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if deleted == nil {
		return NotFoundf("Appointment with ID %s not found", appointmentID)
	}

	s.cancelReminder(ctx, appointmentID)

	unavail, err := s.UnavailabilityRepo.Get(ctx, deleted.TherapistID)
	if err != nil {
		return err
	}
	if unavail == nil {
		return nil
	}
	entry := models.FindDate(unavail.Unavailability, deleted.Date)
	if entry == nil {
		return nil
	}

	kept := entry.TimeSlots[:0]
	for _, slot := range entry.TimeSlots {
		if !slot.Equals(deleted.TimeSlot) {
			kept = append(kept, slot)
		}
	}
	entry.TimeSlots = kept
	if len(entry.TimeSlots) == 0 {
		unavail.Unavailability = models.RemoveDate(unavail.Unavailability, deleted.Date)
	}

	if err := s.UnavailabilityRepo.SetEntries(ctx, deleted.TherapistID, unavail.Unavailability); err != nil {
		return err
	}
	s.invalidateUnavailability(ctx, deleted.TherapistID)
	return nil
}

func (s *DefaultSchedulingService) cancelReminder(ctx context.Context, appointmentID string) {
	if s.Reminders == nil {
		return
	}
	if err := s.Reminders.Cancel(ctx, appointmentID); err != nil {
		utils.GetLogger().Warn("failed to cancel appointment reminder",
			zap.String("appointmentId", appointmentID), zap.Error(err))
	}
}
