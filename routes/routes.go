package routes

import (
	"github.com/gin-gonic/gin"

	"mindloo/handlers"
)

// RegisterRoutes mounts the full API surface.
func RegisterRoutes(r *gin.Engine, sched *handlers.SchedulingHandler, dir *handlers.DirectoryHandlers) {
	r.GET("/health", handlers.HealthHandler)

	api := r.Group("/api")

	// Plain record CRUD: patients, therapists, sessions, medical records,
	// messages, reviews, treatment plans.
	dir.Register(api)

	appointments := api.Group("/appointments")
	{
		appointments.POST("", sched.CreateAppointmentHandler)
		appointments.GET("", sched.ListAppointmentsHandler)
		appointments.GET("/:id", sched.GetAppointmentHandler)
		appointments.PATCH("/:id", sched.UpdateAppointmentHandler)
		appointments.DELETE("/:id", sched.DeleteAppointmentHandler)
	}

	therapists := api.Group("/therapists/:id")
	{
		therapists.GET("/availability", sched.GetAvailabilityHandler)
		therapists.POST("/availability", sched.InsertWorkTimeHandler)
		therapists.DELETE("/availability", sched.DeleteWorkTimeHandler)

		therapists.GET("/unavailability", sched.GetUnavailabilityHandler)
		therapists.POST("/unavailability", sched.InsertUnavailabilityHandler)
		therapists.DELETE("/unavailability", sched.DeleteUnavailabilityHandler)
	}
}
