package scheduling

import (
	"errors"
	"fmt"

	"mindloo/models"
)

// Kind classifies scheduling failures so the HTTP layer can pick a status
// code without string matching.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindInvalid
	KindConflict
)

// Error is the failure type returned by the scheduling service. Slots carries
// the offending intervals for batch operations (overlapping or nonexistent
// slots), echoed back to the caller.
type Error struct {
	Kind    Kind
	Message string
	Slots   []models.TimeSlot
}

func (e *Error) Error() string {
	return e.Message
}

// NotFoundf builds a KindNotFound error.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Invalidf builds a KindInvalid error.
func Invalidf(format string, args ...any) *Error {
	return &Error{Kind: KindInvalid, Message: fmt.Sprintf(format, args...)}
}

// Conflictf builds a KindConflict error.
func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// WithSlots attaches the offending slots to the error.
func (e *Error) WithSlots(slots []models.TimeSlot) *Error {
	e.Slots = slots
	return e
}

// AsError extracts a scheduling *Error from err, or nil.
func AsError(err error) *Error {
	var se *Error
	if errors.As(err, &se) {
		return se
	}
	return nil
}
