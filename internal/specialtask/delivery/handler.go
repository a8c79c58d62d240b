package delivery

import (
	"errors"
	"net/http"

	"household-backend/internal/specialtask/domain"
	"household-backend/internal/specialtask/usecase"

	"github.com/gin-gonic/gin"
)

// SpecialTaskHandler handles special task HTTP requests
type SpecialTaskHandler struct {
	usecase usecase.SpecialTaskUsecase
}

// NewSpecialTaskHandler creates a new SpecialTaskHandler
func NewSpecialTaskHandler(uc usecase.SpecialTaskUsecase) *SpecialTaskHandler {
	return &SpecialTaskHandler{usecase: uc}
}

// AssignRequest represents the request body for a new special task
type AssignRequest struct {
	Instruction string `json:"instruction" binding:"required"`
}

// GetSpecialTasks returns active special tasks, the full history with
// all=true, or history matches for q
// GET /api/special-tasks?all=true&q=milk
func (h *SpecialTaskHandler) GetSpecialTasks(c *gin.Context) {
	var (
		tasks []domain.SpecialTask
		err   error
	)
	if q := c.Query("q"); q != "" {
		tasks, err = h.usecase.Search(c.Request.Context(), q)
	} else {
		tasks, err = h.usecase.List(c.Request.Context(), c.Query("all") == "true")
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"special_tasks": tasks})
}

// Complete marks a special task done
// POST /api/special-tasks/:id/complete
func (h *SpecialTaskHandler) Complete(c *gin.Context) {
	tasks, err := h.usecase.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"special_tasks": tasks})
}

// Assign translates and stores a new special task
// POST /api/admin/special-tasks
func (h *SpecialTaskHandler) Assign(c *gin.Context) {
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.usecase.Assign(c.Request.Context(), req.Instruction)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyInstruction) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, result)
}
