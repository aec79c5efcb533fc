package tasks

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindloo/models"
)

func TestNewAppointmentReminderTask(t *testing.T) {
	payload := models.ReminderPayload{
		AppointmentID: "abc123",
		TherapistID:   "T1",
		PatientID:     "P1",
		Date:          "2024-05-01",
		Start:         "09:00",
		Subject:       "intake",
	}

	task, opts, err := NewAppointmentReminderTask(payload, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, TypeAppointmentReminder, task.Type())
	assert.Len(t, opts, 2)

	var decoded models.ReminderPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, payload, decoded)
}

func TestReminderTaskID(t *testing.T) {
	assert.Equal(t, "reminder:abc123", ReminderTaskID("abc123"))
}
