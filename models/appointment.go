package models

import "time"

// Appointment statuses accepted by the API.
const (
	AppointmentScheduled   = "scheduled"
	AppointmentCompleted   = "completed"
	AppointmentCancelled   = "cancelled"
	AppointmentRescheduled = "rescheduled"
)

// Appointment is the patient-facing booking record tied to one time slot.
type Appointment struct {
	AppointmentID string    `bson:"appointmentId" json:"appointmentId"`
	TherapistID   string    `bson:"therapistId" json:"therapistId"`
	PatientID     string    `bson:"patientId" json:"patientId"`
	Date          string    `bson:"date" json:"date"`
	TimeSlot      TimeSlot  `bson:"timeSlot" json:"timeSlot"`
	Status        string    `bson:"status" json:"status"`
	Subject       string    `bson:"subject,omitempty" json:"subject,omitempty"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ValidStatus reports whether s is one of the accepted appointment statuses.
func ValidStatus(s string) bool {
	switch s {
	case AppointmentScheduled, AppointmentCompleted, AppointmentCancelled, AppointmentRescheduled:
		return true
	}
	return false
}

// AppointmentFilter narrows appointment list queries; zero-value fields are ignored.
type AppointmentFilter struct {
	TherapistID string
	PatientID   string
	Date        string
	Status      string
}

// CreateAppointmentRequest is the payload for POST /api/appointments.
type CreateAppointmentRequest struct {
	TherapistID string   `json:"therapistId" binding:"required"`
	PatientID   string   `json:"patientId" binding:"required"`
	Date        string   `json:"date" binding:"required"`
	TimeSlot    TimeSlot `json:"timeSlot" binding:"required"`
	Status      string   `json:"status"`
	Subject     string   `json:"subject"`
	Notes       string   `json:"notes"`
}

// UpdateAppointmentRequest is the PATCH payload. Only status, subject and
// notes may change; moving an appointment to another slot is a delete plus
// re-create so the unavailability store stays in sync.
type UpdateAppointmentRequest struct {
	Status  *string `json:"status"`
	Subject *string `json:"subject"`
	Notes   *string `json:"notes"`
}

// SlotBatchRequest is the payload for availability and unavailability
// insert/delete endpoints. TimeSlots may be empty on delete, which targets
// the whole date.
type SlotBatchRequest struct {
	Date      string     `json:"date" binding:"required"`
	TimeSlots []TimeSlot `json:"time_slots"`
}
