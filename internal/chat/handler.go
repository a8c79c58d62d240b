package chat

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler handles chat HTTP requests
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// SendRequest represents the request body for a chat message
type SendRequest struct {
	Text string `json:"text" binding:"required"`
}

// StartSession opens a conversation
// POST /api/chat/sessions
func (h *Handler) StartSession(c *gin.Context) {
	c.JSON(http.StatusCreated, gin.H{"session_id": h.service.Start()})
}

// GetMessages returns a conversation
// GET /api/chat/sessions/:id/messages
func (h *Handler) GetMessages(c *gin.Context) {
	msgs, err := h.service.Messages(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

// SendMessage sends a user message and returns the reply
// POST /api/chat/sessions/:id/messages
func (h *Handler) SendMessage(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, msgs, err := h.service.Send(c.Request.Context(), c.Param("id"), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrEmptyMessage):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply, "messages": msgs})
}
