package usecase

import (
	"context"

	"household-backend/internal/dailystatus"
	"household-backend/internal/task/domain"
)

// TaskUsecase defines the interface for daily schedule logic
type TaskUsecase interface {
	// ListTasks returns today's schedule with completion flags
	ListTasks(ctx context.Context) ([]domain.RenderedTask, error)

	// SetCompletion marks a task for today and returns the re-read schedule
	SetCompletion(ctx context.Context, taskID string, completed bool) ([]domain.RenderedTask, error)

	// Toggle flips a task for today and returns the re-read schedule
	Toggle(ctx context.Context, taskID string) ([]domain.RenderedTask, error)

	// SaveDefinitions validates and stores a schedule override
	SaveDefinitions(ctx context.Context, defs []domain.TaskDefinition) error

	// History returns the completion map of a past day
	History(ctx context.Context, date string) (dailystatus.StatusMap, error)
}
