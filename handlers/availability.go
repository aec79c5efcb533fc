package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mindloo/models"
)

// GetAvailabilityHandler handles GET /api/therapists/:id/availability.
func (h *SchedulingHandler) GetAvailabilityHandler(c *gin.Context) {
	avail, err := h.Svc.GetWorkTime(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "", "Error fetching availability")
		return
	}
	c.JSON(http.StatusOK, avail)
}

// InsertWorkTimeHandler handles POST /api/therapists/:id/availability. The
// batch is rejected wholesale when any new slot overlaps an existing one.
func (h *SchedulingHandler) InsertWorkTimeHandler(c *gin.Context) {
	var req models.SlotBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	avail, created, err := h.Svc.InsertWorkTime(c.Request.Context(), c.Param("id"), req.Date, req.TimeSlots)
	if err != nil {
		writeError(c, err, "overlappingSlots", "Error adding work time")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"message": "Work time added successfully", "availability": avail})
}

// DeleteWorkTimeHandler handles DELETE /api/therapists/:id/availability.
// Omitting time_slots removes the whole date.
func (h *SchedulingHandler) DeleteWorkTimeHandler(c *gin.Context) {
	var req models.SlotBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	avail, err := h.Svc.DeleteWorkTime(c.Request.Context(), c.Param("id"), req.Date, req.TimeSlots)
	if err != nil {
		writeError(c, err, "nonExistingSlots", "Error deleting work time")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Work time deleted successfully", "availability": avail})
}

// GetUnavailabilityHandler handles GET /api/therapists/:id/unavailability.
func (h *SchedulingHandler) GetUnavailabilityHandler(c *gin.Context) {
	unavail, err := h.Svc.GetUnavailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "", "Error fetching unavailability")
		return
	}
	c.JSON(http.StatusOK, unavail)
}

// InsertUnavailabilityHandler handles POST /api/therapists/:id/unavailability,
// blocking slots without creating an appointment.
func (h *SchedulingHandler) InsertUnavailabilityHandler(c *gin.Context) {
	var req models.SlotBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	unavail, created, err := h.Svc.InsertUnavailability(c.Request.Context(), c.Param("id"), req.Date, req.TimeSlots)
	if err != nil {
		writeError(c, err, "", "Error updating time slots")
		return
	}

	if created {
		c.JSON(http.StatusCreated, gin.H{"message": "Time slots added successfully", "unavailability": unavail})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Time slots updated successfully", "unavailability": unavail})
}

// DeleteUnavailabilityHandler handles DELETE /api/therapists/:id/unavailability.
func (h *SchedulingHandler) DeleteUnavailabilityHandler(c *gin.Context) {
	var req models.SlotBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	unavail, err := h.Svc.DeleteUnavailability(c.Request.Context(), c.Param("id"), req.Date, req.TimeSlots)
	if err != nil {
		writeError(c, err, "", "Error deleting time slots")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Time slots deleted successfully", "unavailability": unavail})
}
