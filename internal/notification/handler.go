package notification

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler exposes device registration
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterDeviceRequest represents the request body for registering a device
type RegisterDeviceRequest struct {
	Token string `json:"token" binding:"required"`
}

// RegisterDevice saves an FCM token for special task pushes
// POST /api/devices
func (h *Handler) RegisterDevice(c *gin.Context) {
	var req RegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.RegisterDevice(c.Request.Context(), req.Token); err != nil {
		if errors.Is(err, ErrEmptyToken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Device registered",
		"notifications": h.service.Enabled(),
	})
}
