package http

import (
	"github.com/gin-gonic/gin"

	"timesheet-assistant/internal/middleware"
)

// RegisterRoutes maps the web form and the JSON API to Handler methods.
// Only POST routes are rate limited.
func RegisterRoutes(r *gin.Engine, h Handler, mw middleware.Middleware) {
	web := r.Group("/", mw.Session())
	{
		web.GET("", h.Index)
		web.POST("", mw.RateLimit(), h.Submit)
		web.GET("download/:filename", h.Download)
	}

	api := r.Group("/api/v1")
	{
		api.POST("/timesheet/parse", mw.RateLimit(), h.Parse)
		api.POST("/timesheet/generate", mw.RateLimit(), h.Generate)
		api.POST("/chat", mw.RateLimit(), h.Chat)
	}
}
