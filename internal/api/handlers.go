package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sitegen_ai_server/internal/ai"
	"sitegen_ai_server/internal/archive"
	"sitegen_ai_server/internal/export"
	"sitegen_ai_server/internal/generator"
	"sitegen_ai_server/internal/metrics"
	"sitegen_ai_server/internal/spec"
	"sitegen_ai_server/internal/templates"
)

// SpecConverter converts a free-form prompt into a validated website spec.
// Satisfied by *ai.Converter; narrowed to an interface so handlers can be
// tested without the AI service.
type SpecConverter interface {
	Convert(ctx context.Context, promptText string) (*spec.WebsiteSpec, error)
}

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	converter SpecConverter
	exporter  *export.Exporter
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(converter SpecConverter, exporter *export.Exporter) *APIHandler {
	return &APIHandler{
		converter: converter,
		exporter:  exporter,
	}
}

// --- Structs for API Requests/Responses ---

type PromptRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// --- API Handlers ---

// POST /api/spec
func (h *APIHandler) MakeSpec(c *gin.Context) {
	metrics.SpecRequests.Inc()

	var req PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
		return
	}

	ws, err := h.converter.Convert(c.Request.Context(), req.Prompt)
	if err != nil {
		h.writeConvertError(c, err)
		return
	}

	c.JSON(http.StatusOK, ws)
}

// POST /api/generate
func (h *APIHandler) GenerateSite(c *gin.Context) {
	metrics.GenerateRequests.Inc()
	start := time.Now()

	var req PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
		return
	}

	projectID := uuid.NewString()
	log.Printf("Generating site for project %s", projectID)

	ws, err := h.converter.Convert(c.Request.Context(), req.Prompt)
	if err != nil {
		h.writeConvertError(c, err)
		return
	}

	files, err := generator.Generate(ws)
	if err != nil {
		metrics.IncError("render")
		log.Printf("Error rendering project %s: %v", projectID, err)
		var renderErr *templates.RenderError
		if errors.As(err, &renderErr) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Template rendering failed: " + renderErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate site"})
		return
	}

	if err := h.exporter.SaveFiles(projectID, files); err != nil {
		// Export is best-effort; the download is the product.
		log.Printf("WARN: Failed to export project %s: %v", projectID, err)
	}

	zipped, err := archive.Zip(files)
	if err != nil {
		metrics.IncError("archive")
		log.Printf("Error archiving project %s: %v", projectID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to package site"})
		return
	}

	metrics.GenerationDurationSeconds.Observe(time.Since(start).Seconds())
	log.Printf("Generated project %s: %d files, %d bytes zipped", projectID, len(files), len(zipped))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "website-"+projectID+".zip"))
	c.Data(http.StatusOK, "application/zip", zipped)
}

// writeConvertError maps converter failures onto HTTP responses: malformed
// AI output is the client's prompt problem space (422), upstream trouble is
// a gateway problem (502), and a bad credential is our misconfiguration.
func (h *APIHandler) writeConvertError(c *gin.Context, err error) {
	var vErr *spec.ValidationError
	if errors.As(err, &vErr) {
		metrics.IncError("validation")
		log.Printf("Spec validation failed: %v", vErr)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": vErr.Error()})
		return
	}

	var svcErr *ai.ExternalServiceError
	if errors.As(err, &svcErr) {
		metrics.IncError("llm")
		log.Printf("AI service failure (%s): %v", svcErr.Kind, svcErr.Err)
		switch svcErr.Kind {
		case ai.KindAuth:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "AI service credential rejected"})
		case ai.KindRateLimit:
			c.JSON(http.StatusBadGateway, gin.H{"error": "AI service quota exceeded, try again later"})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "AI service is unavailable"})
		}
		return
	}

	metrics.IncError("llm")
	log.Printf("Unexpected conversion failure: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert prompt"})
}
