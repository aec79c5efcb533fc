package scheduling

import (
	"context"

	"mindloo/models"
)

// GetUnavailability returns the therapist's booked/blocked intervals.
func (s *DefaultSchedulingService) GetUnavailability(ctx context.Context, therapistID string) (*models.TherapistUnavailability, error) {
	if doc := s.cachedUnavailability(ctx, therapistID); doc != nil {
		return doc, nil
	}

	unavail, err := s.UnavailabilityRepo.Get(ctx, therapistID)
	if err != nil {
		return nil, err
	}
	if unavail == nil {
		return nil, NotFoundf("No unavailability found for therapist with ID %s", therapistID)
	}
	s.cacheSet(ctx, unavailabilityCachePrefix+therapistID, unavail)
	return unavail, nil
}

// InsertUnavailability blocks intervals without creating an appointment.
// Every slot in the batch must sit inside some declared availability slot for
// the date. Duplicate detection against already-blocked slots is an exact
// start/end match, not an overlap test: a partially overlapping slot passes.
// That asymmetry with InsertWorkTime is inherited API behavior and kept.
// The returned bool is true when a fresh unavailability document was created.
func (s *DefaultSchedulingService) InsertUnavailability(ctx context.Context, therapistID, date string, slots []models.TimeSlot) (*models.TherapistUnavailability, bool, error) {
	if len(slots) == 0 {
		return nil, false, Invalidf("At least one time slot is required")
	}

	unlock := s.lock(therapistID)
	defer unlock()

	avail, err := s.AvailabilityRepo.Get(ctx, therapistID)
	if err != nil {
		return nil, false, err
	}
	if avail == nil {
		return nil, false, NotFoundf("No availability found for therapist with ID %s", therapistID)
	}

	availEntry := models.FindDate(avail.Availability, date)
	if availEntry == nil {
		return nil, false, Invalidf("Therapist is not available on date %s", date)
	}

	for _, slot := range slots {
		within := false
		for _, declared := range availEntry.TimeSlots {
			if declared.Contains(slot) {
				within = true
				break
			}
		}
		if !within {
			return nil, false, Invalidf("One or more time slots are not within the therapist's availability.")
		}
	}

	unavail, err := s.UnavailabilityRepo.Get(ctx, therapistID)
	if err != nil {
		return nil, false, err
	}

	if unavail == nil {
		doc := &models.TherapistUnavailability{
			TherapistID:    therapistID,
			Unavailability: []models.DateEntry{{Date: date, TimeSlots: slots}},
		}
		if err := s.UnavailabilityRepo.Create(ctx, doc); err != nil {
			return nil, false, err
		}
		s.invalidateUnavailability(ctx, therapistID)
		return doc, true, nil
	}

	if entry := models.FindDate(unavail.Unavailability, date); entry != nil {
		for _, existing := range entry.TimeSlots {
			for _, slot := range slots {
				if slot.Equals(existing) {
					return nil, false, Conflictf("Duplicate time slots found for the same date.")
				}
			}
		}
		entry.TimeSlots = append(entry.TimeSlots, slots...)
	} else {
		unavail.Unavailability = append(unavail.Unavailability, models.DateEntry{Date: date, TimeSlots: slots})
	}

	if err := s.UnavailabilityRepo.SetEntries(ctx, therapistID, unavail.Unavailability); err != nil {
		return nil, false, err
	}
	s.invalidateUnavailability(ctx, therapistID)
	return unavail, false, nil
}

// DeleteUnavailability unblocks intervals. With an empty slot list the whole
// date entry goes. Otherwise only the intersection of requested and existing
// slots is removed; requested slots that do not exist are silently skipped,
// and the request fails only when nothing matches at all. This is looser than
// DeleteWorkTime on purpose; the two endpoints have different contracts.
func (s *DefaultSchedulingService) DeleteUnavailability(ctx context.Context, therapistID, date string, slots []models.TimeSlot) (*models.TherapistUnavailability, error) {
	unlock := s.lock(therapistID)
	defer unlock()

	unavail, err := s.UnavailabilityRepo.Get(ctx, therapistID)
	if err != nil {
		return nil, err
	}
	if unavail == nil {
		return nil, NotFoundf("No unavailability found for therapist with ID %s", therapistID)
	}

	entry := models.FindDate(unavail.Unavailability, date)
	if entry == nil {
		return nil, NotFoundf("No unavailability found for therapist on date %s", date)
	}

	if len(slots) == 0 {
		unavail.Unavailability = models.RemoveDate(unavail.Unavailability, date)
	} else {
		var toDelete []models.TimeSlot
		for _, requested := range slots {
			for _, existing := range entry.TimeSlots {
				if requested.Equals(existing) {
					toDelete = append(toDelete, requested)
					break
				}
			}
		}
		if len(toDelete) == 0 {
			return nil, NotFoundf("The specified time slots do not exist in the database.")
		}

		kept := entry.TimeSlots[:0]
		for _, existing := range entry.TimeSlots {
			remove := false
			for _, requested := range toDelete {
				if requested.Equals(existing) {
					remove = true
					break
				}
			}
			if !remove {
				kept = append(kept, existing)
			}
		}
		entry.TimeSlots = kept
		if len(entry.TimeSlots) == 0 {
			unavail.Unavailability = models.RemoveDate(unavail.Unavailability, date)
		}
	}

	if err := s.UnavailabilityRepo.SetEntries(ctx, therapistID, unavail.Unavailability); err != nil {
		return nil, err
	}
	s.invalidateUnavailability(ctx, therapistID)
	return unavail, nil
}
