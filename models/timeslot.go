package models

// TimeSlot is a half-open interval [Start, End) within a single calendar date.
// Times are zero-padded 24-hour "HH:MM" strings, so lexicographic comparison
// matches chronological order.
type TimeSlot struct {
	Start string `bson:"start" json:"start" binding:"required"`
	End   string `bson:"end" json:"end" binding:"required"`
}

// Overlaps reports whether the two slots share any time. Back-to-back slots
// (a.End == b.Start) do not overlap.
func (a TimeSlot) Overlaps(b TimeSlot) bool {
	return a.Start < b.End && a.End > b.Start
}

// Contains reports whether inner lies entirely within a.
func (a TimeSlot) Contains(inner TimeSlot) bool {
	return inner.Start >= a.Start && inner.End <= a.End
}

// Equals reports an exact start/end match.
func (a TimeSlot) Equals(b TimeSlot) bool {
	return a.Start == b.Start && a.End == b.End
}
