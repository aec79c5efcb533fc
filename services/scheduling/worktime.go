package scheduling

import (
	"context"

	"mindloo/models"
)

// GetWorkTime returns the therapist's declared working hours.
func (s *DefaultSchedulingService) GetWorkTime(ctx context.Context, therapistID string) (*models.TherapistAvailability, error) {
	if doc := s.cachedAvailability(ctx, therapistID); doc != nil {
		return doc, nil
	}

	avail, err := s.AvailabilityRepo.Get(ctx, therapistID)
	if err != nil {
		return nil, err
	}
	if avail == nil {
		return nil, NotFoundf("No availability found for therapist with ID %s", therapistID)
	}
	s.cacheSet(ctx, availabilityCachePrefix+therapistID, avail)
	return avail, nil
}

// InsertWorkTime declares working hours for one date. The batch is
// all-or-nothing: if the date already has slots, any overlap between a new
// slot and an existing one rejects the whole request, with the conflicting
// existing slots reported. The returned bool is true when a fresh
// availability document was created.
func (s *DefaultSchedulingService) InsertWorkTime(ctx context.Context, therapistID, date string, slots []models.TimeSlot) (*models.TherapistAvailability, bool, error) {
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
		doc := &models.TherapistAvailability{
			TherapistID:  therapistID,
			Availability: []models.DateEntry{{Date: date, TimeSlots: slots}},
		}
		if err := s.AvailabilityRepo.Create(ctx, doc); err != nil {
			return nil, false, err
		}
		s.invalidateAvailability(ctx, therapistID)
		return doc, true, nil
	}

	if entry := models.FindDate(avail.Availability, date); entry != nil {
		var overlapping []models.TimeSlot
		for _, existing := range entry.TimeSlots {
			for _, slot := range slots {
				if slot.Overlaps(existing) {
					overlapping = append(overlapping, existing)
					break
				}
			}
		}
		if len(overlapping) > 0 {
			return nil, false, Conflictf("Conflicting time slots found").WithSlots(overlapping)
		}
		entry.TimeSlots = append(entry.TimeSlots, slots...)
	} else {
		avail.Availability = append(avail.Availability, models.DateEntry{Date: date, TimeSlots: slots})
	}

	if err := s.AvailabilityRepo.SetEntries(ctx, therapistID, avail.Availability); err != nil {
		return nil, false, err
	}
	s.invalidateAvailability(ctx, therapistID)
	return avail, false, nil
}

// DeleteWorkTime removes declared hours. With an empty slot list the whole
// date entry goes; otherwise every requested slot must match an existing one
// exactly, or the request fails listing the offenders before anything is
// touched. A date entry left empty is removed.
func (s *DefaultSchedulingService) DeleteWorkTime(ctx context.Context, therapistID, date string, slots []models.TimeSlot) (*models.TherapistAvailability, error) {
	unlock := s.lock(therapistID)
	defer unlock()

	avail, err := s.AvailabilityRepo.Get(ctx, therapistID)
	if err != nil {
		return nil, err
	}
	if avail == nil {
		return nil, NotFoundf("No availability found for therapist with ID %s", therapistID)
	}

	entry := models.FindDate(avail.Availability, date)
	if entry == nil {
		return nil, NotFoundf("No availability found for date %s", date)
	}

	if len(slots) == 0 {
		avail.Availability = models.RemoveDate(avail.Availability, date)
	} else {
		var nonExisting []models.TimeSlot
		for _, requested := range slots {
			found := false
			for _, existing := range entry.TimeSlots {
				if requested.Equals(existing) {
					found = true
					break
				}
			}
			if !found {
				nonExisting = append(nonExisting, requested)
			}
		}
		if len(nonExisting) > 0 {
			return nil, NotFoundf("One or more time slots do not exist").WithSlots(nonExisting)
		}

		kept := entry.TimeSlots[:0]
		for _, existing := range entry.TimeSlots {
			remove := false
			for _, requested := range slots {
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
			avail.Availability = models.RemoveDate(avail.Availability, date)
		}
	}

	if err := s.AvailabilityRepo.SetEntries(ctx, therapistID, avail.Availability); err != nil {
		return nil, err
	}
	s.invalidateAvailability(ctx, therapistID)
	return avail, nil
}
