package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"household-backend/internal/specialtask/domain"
	"household-backend/internal/store"
)

// SpecialTasksKey holds the JSON array of special tasks.
const SpecialTasksKey = "special_tasks"

type storeSpecialTaskRepository struct {
	store store.Store
}

// NewStoreSpecialTaskRepository creates a SpecialTaskRepository over a key-value store
func NewStoreSpecialTaskRepository(s store.Store) SpecialTaskRepository {
	return &storeSpecialTaskRepository{store: s}
}

func (r *storeSpecialTaskRepository) List(ctx context.Context) ([]domain.SpecialTask, error) {
	var tasks []domain.SpecialTask
	if _, err := store.GetJSON(ctx, r.store, SpecialTasksKey, &tasks); err != nil {
		if errors.Is(err, store.ErrCorrupt) {
			log.Printf("[SpecialTaskRepo] %v, starting from an empty list", err)
			return []domain.SpecialTask{}, nil
		}
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.SpecialTask{}
	}
	return tasks, nil
}

func (r *storeSpecialTaskRepository) ListActive(ctx context.Context) ([]domain.SpecialTask, error) {
	tasks, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]domain.SpecialTask, 0, len(tasks))
	for _, t := range tasks {
		if !t.IsCompleted {
			active = append(active, t)
		}
	}
	return active, nil
}

func (r *storeSpecialTaskRepository) Add(ctx context.Context, task domain.SpecialTask) error {
	tasks, err := r.List(ctx)
	if err != nil {
		return err
	}
	tasks = append(tasks, task)
	if err := store.SetJSON(ctx, r.store, SpecialTasksKey, tasks); err != nil {
		return fmt.Errorf("save special tasks: %w", err)
	}
	return nil
}

func (r *storeSpecialTaskRepository) Complete(ctx context.Context, id string) error {
	tasks, err := r.List(ctx)
	if err != nil {
		return err
	}

	changed := false
	for i := range tasks {
		if tasks[i].ID == id && !tasks[i].IsCompleted {
			tasks[i].IsCompleted = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	if err := store.SetJSON(ctx, r.store, SpecialTasksKey, tasks); err != nil {
		return fmt.Errorf("save special tasks: %w", err)
	}
	return nil
}
