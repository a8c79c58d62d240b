package usecase

import (
	"context"

	"household-backend/internal/specialtask/domain"
	"household-backend/pkg/ai"
)

// SpecialTaskUsecase defines the special task lifecycle
type SpecialTaskUsecase interface {
	// Assign translates instruction and appends it as a new special task
	Assign(ctx context.Context, instruction string) (*AssignResult, error)

	// List returns active tasks, or the full history when all is set
	List(ctx context.Context, all bool) ([]domain.SpecialTask, error)

	// Search ranks the full history against query in all three languages
	Search(ctx context.Context, query string) ([]domain.SpecialTask, error)

	// Complete permanently completes a task
	Complete(ctx context.Context, id string) ([]domain.SpecialTask, error)
}

// AssignResult reports the stored task and whether translation succeeded.
type AssignResult struct {
	Task       domain.SpecialTask `json:"task"`
	Translated bool               `json:"translated"`
}

// Notifier is told about new special tasks. Delivery is best effort.
type Notifier interface {
	NotifySpecialTask(ctx context.Context, task domain.SpecialTask) error
}

// Translator is the part of ai.Gateway this package needs.
type Translator interface {
	Translate(ctx context.Context, text string) (ai.Translation, error)
}
