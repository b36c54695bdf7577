package handler

import (
	"net/http"
	"time"

	"main/utils"

	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

// HealthHandler reports process liveness with a small system snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"uptime_seconds": int64(time.Since(startTime).Seconds()),
		"cpu_percent":    utils.GetCPUUsage(),
	})
}
