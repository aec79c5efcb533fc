package models

// ReminderPayload is the queued task body for an appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	TherapistID   string `json:"therapistId"`
	PatientID     string `json:"patientId"`
	Date          string `json:"date"`
	Start         string `json:"start"`
	Subject       string `json:"subject,omitempty"`
}
