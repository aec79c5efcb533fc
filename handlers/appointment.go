package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mindloo/models"
	"mindloo/services/scheduling"
)

// SchedulingHandler exposes the booking engine and slot maintenance endpoints.
type SchedulingHandler struct {
	Svc scheduling.SchedulingService
}

// NewSchedulingHandler constructs the handler.
func NewSchedulingHandler(svc scheduling.SchedulingService) *SchedulingHandler {
	return &SchedulingHandler{Svc: svc}
}

// writeError maps a scheduling error onto the HTTP response. slotsKey names
// the JSON field for offending slots ("overlappingSlots", "nonExistingSlots");
// empty means no slot payload for this endpoint.
func writeError(c *gin.Context, err error, slotsKey, fallback string) {
	if se := scheduling.AsError(err); se != nil {
		status := http.StatusBadRequest
		if se.Kind == scheduling.KindNotFound {
			status = http.StatusNotFound
		}
		body := gin.H{"message": se.Message}
		if slotsKey != "" && len(se.Slots) > 0 {
			body[slotsKey] = se.Slots
		}
		c.JSON(status, body)
		return
	}
	getLogger(c).Error(fallback, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"message": fallback, "error": err.Error()})
}

// CreateAppointmentHandler handles POST /api/appointments.
func (h *SchedulingHandler) CreateAppointmentHandler(c *gin.Context) {
	var req models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	appt, err := h.Svc.CreateAppointment(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "", "Error creating appointment")
		return
	}

	getLogger(c).Info("appointment created",
		zap.String("appointmentId", appt.AppointmentID),
		zap.String("therapistId", appt.TherapistID),
		zap.String("date", appt.Date))
	c.JSON(http.StatusCreated, gin.H{"message": "Appointment created successfully", "appointment": appt})
}

// ListAppointmentsHandler handles GET /api/appointments with optional
// therapistId, patientId, date and status query filters.
func (h *SchedulingHandler) ListAppointmentsHandler(c *gin.Context) {
	filter := models.AppointmentFilter{
		TherapistID: c.Query("therapistId"),
		PatientID:   c.Query("patientId"),
		Date:        c.Query("date"),
		Status:      c.Query("status"),
	}

	appts, err := h.Svc.ListAppointments(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err, "", "Error retrieving appointments")
		return
	}
	c.JSON(http.StatusOK, appts)
}

// GetAppointmentHandler handles GET /api/appointments/:id.
func (h *SchedulingHandler) GetAppointmentHandler(c *gin.Context) {
	appt, err := h.Svc.GetAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "", "Error retrieving appointment")
		return
	}
	c.JSON(http.StatusOK, appt)
}

// UpdateAppointmentHandler handles PATCH /api/appointments/:id.
func (h *SchedulingHandler) UpdateAppointmentHandler(c *gin.Context) {
	var patch models.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	appt, err := h.Svc.UpdateAppointment(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, err, "", "Error updating appointment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment updated successfully", "appointment": appt})
}

// DeleteAppointmentHandler handles DELETE /api/appointments/:id. The matching
// unavailability slot is retracted alongside.
func (h *SchedulingHandler) DeleteAppointmentHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.DeleteAppointment(c.Request.Context(), id); err != nil {
		writeError(c, err, "", "Error deleting appointment")
		return
	}

	getLogger(c).Info("appointment deleted", zap.String("appointmentId", id))
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully", "appointmentId": id})
}
