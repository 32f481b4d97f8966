package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	internalapi "sitegen_ai_server/internal/api"
	"sitegen_ai_server/internal/metrics"
)

// RegisterRoutes sets up the API endpoints and the static prompt form.
func RegisterRoutes(router *gin.Engine, h *internalapi.APIHandler) {

	// Static prompt-entry page
	router.StaticFile("/", "./web/static/index.html")

	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/spec", h.MakeSpec)         // Convert a prompt into a validated spec
		apiGroup.POST("/generate", h.GenerateSite) // Full pipeline: spec -> files -> zip download
	}

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
