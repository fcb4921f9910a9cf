package httpserver

import (
	"github.com/gin-gonic/gin"

	"timesheet-assistant/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "timesheet-assistant"
)

// healthCheck godoc
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	srv.status(c, "healthy")
}

// readyCheck godoc. Nothing external has to come up first, so listening means ready.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	srv.status(c, "ready")
}

// liveCheck godoc
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	srv.status(c, "alive")
}

func (srv HTTPServer) status(c *gin.Context, state string) {
	response.OK(c, gin.H{
		"status":      state,
		"service":     ServiceName,
		"version":     HealthVersion,
		"environment": srv.environment,
	})
}
