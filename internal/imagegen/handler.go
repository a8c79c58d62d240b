package imagegen

import (
	"errors"
	"net/http"

	"household-backend/pkg/ai"

	"github.com/gin-gonic/gin"
)

// Handler handles image generation requests
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GenerateRequest represents the request body for an image
type GenerateRequest struct {
	Prompt string       `json:"prompt" binding:"required"`
	Size   ai.ImageSize `json:"size"`
}

// Generate creates an image
// POST /api/images
func (h *Handler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Size != "" {
		if _, err := req.Size.ProviderSize(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	img, err := h.service.Generate(c.Request.Context(), req.Prompt, req.Size)
	if err != nil {
		var ierr *ai.ImageGenError
		switch {
		case errors.Is(err, ErrEmptyPrompt):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.As(err, &ierr):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate image. Please try again."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	if img == nil {
		c.JSON(http.StatusOK, gin.H{"image": nil, "message": "No image was returned"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"image": img})
}

// Latest returns the last generated image
// GET /api/images/latest
func (h *Handler) Latest(c *gin.Context) {
	img := h.service.Latest()
	if img == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No image generated yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"image": img})
}
