package delivery

import (
	"errors"
	"net/http"

	authdomain "household-backend/internal/auth/domain"
	"household-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles admin unlock requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// UnlockRequest represents the request body for unlocking the admin panel
type UnlockRequest struct {
	PIN string `json:"pin" binding:"required"`
}

// Unlock exchanges the PIN for a session token
// POST /api/admin/unlock
func (h *AuthHandler) Unlock(c *gin.Context) {
	var req UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.authUsecase.Unlock(req.PIN)
	if err != nil {
		if errors.Is(err, authdomain.ErrInvalidPIN) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect PIN"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}
