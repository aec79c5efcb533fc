package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mindloo/utils"
)

// HealthHandler reports the last known health of mongo and redis.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	label := "ok"
	if !status.Mongo {
		code = http.StatusServiceUnavailable
		label = "degraded"
	}
	c.JSON(code, gin.H{"status": label, "services": status})
}
