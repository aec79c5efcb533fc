package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindloo/models"
	"mindloo/services/scheduling"
)

// stubSchedulingService answers every call with canned values.
type stubSchedulingService struct {
	appt   *models.Appointment
	appts  []models.Appointment
	avail  *models.TherapistAvailability
	unav   *models.TherapistUnavailability
	create bool
	err    error
}

func (s *stubSchedulingService) CreateAppointment(context.Context, models.CreateAppointmentRequest) (*models.Appointment, error) {
	return s.appt, s.err
}
func (s *stubSchedulingService) GetAppointment(context.Context, string) (*models.Appointment, error) {
	return s.appt, s.err
}
func (s *stubSchedulingService) ListAppointments(context.Context, models.AppointmentFilter) ([]models.Appointment, error) {
	return s.appts, s.err
}
func (s *stubSchedulingService) UpdateAppointment(context.Context, string, models.UpdateAppointmentRequest) (*models.Appointment, error) {
	return s.appt, s.err
}
func (s *stubSchedulingService) DeleteAppointment(context.Context, string) error {
	return s.err
}
func (s *stubSchedulingService) GetWorkTime(context.Context, string) (*models.TherapistAvailability, error) {
	return s.avail, s.err
}
func (s *stubSchedulingService) InsertWorkTime(context.Context, string, string, []models.TimeSlot) (*models.TherapistAvailability, bool, error) {
	return s.avail, s.create, s.err
}
func (s *stubSchedulingService) DeleteWorkTime(context.Context, string, string, []models.TimeSlot) (*models.TherapistAvailability, error) {
	return s.avail, s.err
}
func (s *stubSchedulingService) GetUnavailability(context.Context, string) (*models.TherapistUnavailability, error) {
	return s.unav, s.err
}
func (s *stubSchedulingService) InsertUnavailability(context.Context, string, string, []models.TimeSlot) (*models.TherapistUnavailability, bool, error) {
	return s.unav, s.create, s.err
}
func (s *stubSchedulingService) DeleteUnavailability(context.Context, string, string, []models.TimeSlot) (*models.TherapistUnavailability, error) {
	return s.unav, s.err
}

func newTestRouter(svc scheduling.SchedulingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSchedulingHandler(svc)

	appts := r.Group("/api/appointments")
	appts.POST("", h.CreateAppointmentHandler)
	appts.GET("", h.ListAppointmentsHandler)
	appts.GET("/:id", h.GetAppointmentHandler)
	appts.PATCH("/:id", h.UpdateAppointmentHandler)
	appts.DELETE("/:id", h.DeleteAppointmentHandler)

	sched := r.Group("/api/therapists/:id")
	sched.GET("/availability", h.GetAvailabilityHandler)
	sched.POST("/availability", h.InsertWorkTimeHandler)
	sched.DELETE("/availability", h.DeleteWorkTimeHandler)
	sched.GET("/unavailability", h.GetUnavailabilityHandler)
	sched.POST("/unavailability", h.InsertUnavailabilityHandler)
	sched.DELETE("/unavailability", h.DeleteUnavailabilityHandler)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]any
	if w.Body.Len() > 0 && strings.HasPrefix(strings.TrimSpace(w.Body.String()), "{") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func TestCreateAppointmentHandler(t *testing.T) {
	reqBody := `{"therapistId":"T1","patientId":"P1","date":"2024-05-01","timeSlot":{"start":"09:00","end":"10:00"},"subject":"intake"}`

	t.Run("created", func(t *testing.T) {
		svc := &stubSchedulingService{appt: &models.Appointment{AppointmentID: "abc", TherapistID: "T1"}}
		w, body := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/appointments", reqBody)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Appointment created successfully", body["message"])
		assert.NotNil(t, body["appointment"])
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := &stubSchedulingService{}
		w, body := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/appointments", `{"date":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request body", body["message"])
	})

	t.Run("slot conflict maps to 400", func(t *testing.T) {
		svc := &stubSchedulingService{err: scheduling.Conflictf("Time slot is already booked.")}
		w, body := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/appointments", reqBody)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Time slot is already booked.", body["message"])
	})

	t.Run("unknown therapist maps to 404", func(t *testing.T) {
		svc := &stubSchedulingService{err: scheduling.NotFoundf("No availability found for therapist with ID T9")}
		w, _ := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/appointments", reqBody)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		svc := &stubSchedulingService{err: assert.AnError}
		w, body := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/appointments", reqBody)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Error creating appointment", body["message"])
		assert.NotEmpty(t, body["error"])
	})
}

func TestListAppointmentsHandler(t *testing.T) {
	t.Run("returns the raw list", func(t *testing.T) {
		svc := &stubSchedulingService{appts: []models.Appointment{{AppointmentID: "a1"}, {AppointmentID: "a2"}}}
		req := httptest.NewRequest(http.MethodGet, "/api/appointments?therapistId=T1", nil)
		w := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var appts []models.Appointment
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &appts))
		assert.Len(t, appts, 2)
	})

	t.Run("no matches maps to 404", func(t *testing.T) {
		svc := &stubSchedulingService{err: scheduling.NotFoundf("No appointments found for the given criteria")}
		w, body := doJSON(t, newTestRouter(svc), http.MethodGet, "/api/appointments", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "No appointments found for the given criteria", body["message"])
	})
}

func TestDeleteAppointmentHandler(t *testing.T) {
	svc := &stubSchedulingService{}
	w, body := doJSON(t, newTestRouter(svc), http.MethodDelete, "/api/appointments/abc", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Appointment deleted successfully", body["message"])
	assert.Equal(t, "abc", body["appointmentId"])
}

func TestInsertWorkTimeHandler(t *testing.T) {
	reqBody := `{"date":"2024-05-01","time_slots":[{"start":"09:00","end":"12:00"}]}`

	t.Run("201 on first insert for the therapist", func(t *testing.T) {
		svc := &stubSchedulingService{avail: &models.TherapistAvailability{TherapistID: "T1"}, create: true}
		w, body := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/therapists/T1/availability", reqBody)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Work time added successfully", body["message"])
	})

	t.Run("200 on append", func(t *testing.T) {
		svc := &stubSchedulingService{avail: &models.TherapistAvailability{TherapistID: "T1"}}
		w, _ := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/therapists/T1/availability", reqBody)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("overlap conflict carries the offending slots", func(t *testing.T) {
		conflict := scheduling.Conflictf("Conflicting time slots found").
			WithSlots([]models.TimeSlot{{Start: "09:00", End: "12:00"}})
		svc := &stubSchedulingService{err: conflict}
		w, body := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/therapists/T1/availability", reqBody)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Conflicting time slots found", body["message"])
		require.Contains(t, body, "overlappingSlots")
		slots := body["overlappingSlots"].([]any)
		require.Len(t, slots, 1)
		assert.Equal(t, "09:00", slots[0].(map[string]any)["start"])
	})

	t.Run("missing date is rejected by binding", func(t *testing.T) {
		svc := &stubSchedulingService{}
		w, _ := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/therapists/T1/availability", `{"time_slots":[]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteWorkTimeHandler(t *testing.T) {
	reqBody := `{"date":"2024-05-01","time_slots":[{"start":"09:00","end":"10:00"}]}`

	t.Run("success", func(t *testing.T) {
		svc := &stubSchedulingService{avail: &models.TherapistAvailability{TherapistID: "T1"}}
		w, body := doJSON(t, newTestRouter(svc), http.MethodDelete, "/api/therapists/T1/availability", reqBody)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Work time deleted successfully", body["message"])
	})

	t.Run("missing slots are reported under nonExistingSlots", func(t *testing.T) {
		err := scheduling.NotFoundf("One or more time slots do not exist").
			WithSlots([]models.TimeSlot{{Start: "09:00", End: "10:00"}})
		svc := &stubSchedulingService{err: err}
		w, body := doJSON(t, newTestRouter(svc), http.MethodDelete, "/api/therapists/T1/availability", reqBody)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, body, "nonExistingSlots")
	})
}

func TestUnavailabilityHandlers(t *testing.T) {
	reqBody := `{"date":"2024-05-01","time_slots":[{"start":"09:00","end":"10:00"}]}`

	t.Run("insert distinguishes create from update", func(t *testing.T) {
		svc := &stubSchedulingService{unav: &models.TherapistUnavailability{TherapistID: "T1"}, create: true}
		w, body := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/therapists/T1/unavailability", reqBody)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Time slots added successfully", body["message"])

		svc.create = false
		w, body = doJSON(t, newTestRouter(svc), http.MethodPost, "/api/therapists/T1/unavailability", reqBody)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Time slots updated successfully", body["message"])
	})

	t.Run("get 404s when nothing is blocked", func(t *testing.T) {
		svc := &stubSchedulingService{err: scheduling.NotFoundf("No unavailability found for therapist with ID T1")}
		w, _ := doJSON(t, newTestRouter(svc), http.MethodGet, "/api/therapists/T1/unavailability", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		svc := &stubSchedulingService{unav: &models.TherapistUnavailability{TherapistID: "T1"}}
		w, body := doJSON(t, newTestRouter(svc), http.MethodDelete, "/api/therapists/T1/unavailability", reqBody)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Time slots deleted successfully", body["message"])
	})
}
