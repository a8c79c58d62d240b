package delivery

import (
	"errors"
	"net/http"

	"household-backend/internal/task/domain"
	"household-backend/internal/task/usecase"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
	}
}

// SetCompletionRequest represents the request body for marking a task
type SetCompletionRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

// GetTasks returns today's schedule
// GET /api/tasks
func (h *TaskHandler) GetTasks(c *gin.Context) {
	tasks, err := h.taskUsecase.ListTasks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// SetCompletion marks a task complete or incomplete for today
// PUT /api/tasks/:id/completion
func (h *TaskHandler) SetCompletion(c *gin.Context) {
	var req SetCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tasks, err := h.taskUsecase.SetCompletion(c.Request.Context(), c.Param("id"), *req.Completed)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// Toggle flips a task's completion for today
// POST /api/tasks/:id/toggle
func (h *TaskHandler) Toggle(c *gin.Context) {
	tasks, err := h.taskUsecase.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// GetHistory returns the stored completion map of one day
// GET /api/tasks/history/:date
func (h *TaskHandler) GetHistory(c *gin.Context) {
	date := c.Param("date")
	status, err := h.taskUsecase.History(c.Request.Context(), date)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "status": status})
}

// SaveDefinitions replaces the schedule
// PUT /api/admin/tasks
func (h *TaskHandler) SaveDefinitions(c *gin.Context) {
	var defs []domain.TaskDefinition
	if err := c.ShouldBindJSON(&defs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.taskUsecase.SaveDefinitions(c.Request.Context(), defs); err != nil {
		writeError(c, err)
		return
	}

	tasks, err := h.taskUsecase.ListTasks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func writeError(c *gin.Context, err error) {
	var verr *usecase.ValidationError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Msg})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
