package repository

import (
	"context"

	"household-backend/internal/specialtask/domain"
)

// SpecialTaskRepository stores the append-only special task list
type SpecialTaskRepository interface {
	// List returns every task in insertion order
	List(ctx context.Context) ([]domain.SpecialTask, error)

	// ListActive returns the tasks that are not completed yet
	ListActive(ctx context.Context) ([]domain.SpecialTask, error)

	// Add appends task to the list
	Add(ctx context.Context, task domain.SpecialTask) error

	// Complete marks id as completed; unknown or completed ids are left alone
	Complete(ctx context.Context, id string) error
}
