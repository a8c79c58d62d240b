package repository

import (
	"context"

	"household-backend/internal/dailystatus"
	"household-backend/internal/task/domain"
)

// TaskRepository defines data access for the daily schedule
type TaskRepository interface {
	// Definitions returns the persisted override, or the defaults when absent or unreadable
	Definitions(ctx context.Context) ([]domain.TaskDefinition, error)

	// SaveDefinitions replaces the override
	SaveDefinitions(ctx context.Context, defs []domain.TaskDefinition) error

	// ListTasks joins the definitions with today's status map
	ListTasks(ctx context.Context) ([]domain.RenderedTask, error)

	// SetCompletion records completed for taskID in today's map
	SetCompletion(ctx context.Context, taskID string, completed bool) error

	// Toggle flips today's completion for taskID and returns the new value
	Toggle(ctx context.Context, taskID string) (bool, error)

	// History returns the status map stored for day
	History(ctx context.Context, day dailystatus.DateKey) (dailystatus.StatusMap, error)
}
