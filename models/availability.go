package models

// DateEntry groups the time slots declared for one calendar date.
// Date is a "YYYY-MM-DD" string and is unique within its parent document.
type DateEntry struct {
	Date      string     `bson:"date" json:"date"`
	TimeSlots []TimeSlot `bson:"time_slots" json:"time_slots"`
}

// TherapistAvailability holds a therapist's declared working hours, one
// document per therapist.
type TherapistAvailability struct {
	TherapistID  string      `bson:"therapistId" json:"therapistId"`
	Availability []DateEntry `bson:"availability" json:"availability"`
}

// TherapistUnavailability holds the intervals already committed to bookings,
// one document per therapist. Same shape as availability but the complement
// meaning: time listed here is NOT free.
type TherapistUnavailability struct {
	TherapistID    string      `bson:"therapistId" json:"therapistId"`
	Unavailability []DateEntry `bson:"unavailability" json:"unavailability"`
}

// FindDate returns a pointer into entries for the given date, or nil.
func FindDate(entries []DateEntry, date string) *DateEntry {
	for i := range entries {
		if entries[i].Date == date {
			return &entries[i]
		}
	}
	return nil
}

// RemoveDate returns entries with the given date's entry dropped.
func RemoveDate(entries []DateEntry, date string) []DateEntry {
	out := entries[:0]
	for _, e := range entries {
		if e.Date != date {
			out = append(out, e)
		}
	}
	return out
}
