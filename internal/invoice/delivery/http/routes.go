package http

import (
	"github.com/gin-gonic/gin"

	"invoice-assistant/internal/middleware"
)

// RegisterRoutes mounts POST <group>/query behind the per-client rate limit.
// Called for /api/v1/chatbot and for the /chatbot path the dashboard widget posts to.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/query", mw.RateLimit(), h.Query)
}
