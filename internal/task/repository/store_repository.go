package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"household-backend/internal/dailystatus"
	"household-backend/internal/store"
	"household-backend/internal/task/domain"
)

// DefinitionsKey holds the optional schedule override.
const DefinitionsKey = "tasks"

type storeTaskRepository struct {
	store   store.Store
	tracker *dailystatus.Tracker
}

// NewStoreTaskRepository creates a TaskRepository over a key-value store
func NewStoreTaskRepository(s store.Store, tracker *dailystatus.Tracker) TaskRepository {
	return &storeTaskRepository{store: s, tracker: tracker}
}

func (r *storeTaskRepository) Definitions(ctx context.Context) ([]domain.TaskDefinition, error) {
	var defs []domain.TaskDefinition
	found, err := store.GetJSON(ctx, r.store, DefinitionsKey, &defs)
	if err != nil {
		if errors.Is(err, store.ErrCorrupt) {
			log.Printf("[TaskRepo] %v, using default tasks", err)
			return domain.DefaultTasks(), nil
		}
		return nil, err
	}
	if !found || defs == nil {
		return domain.DefaultTasks(), nil
	}
	return defs, nil
}

func (r *storeTaskRepository) SaveDefinitions(ctx context.Context, defs []domain.TaskDefinition) error {
	return store.SetJSON(ctx, r.store, DefinitionsKey, defs)
}

func (r *storeTaskRepository) ListTasks(ctx context.Context) ([]domain.RenderedTask, error) {
	defs, err := r.Definitions(ctx)
	if err != nil {
		return nil, err
	}
	_, status, err := r.tracker.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load daily status: %w", err)
	}

	tasks := make([]domain.RenderedTask, 0, len(defs))
	for _, def := range defs {
		tasks = append(tasks, domain.Render(def, status[def.ID]))
	}
	return tasks, nil
}

func (r *storeTaskRepository) SetCompletion(ctx context.Context, taskID string, completed bool) error {
	if err := r.ensureKnown(ctx, taskID); err != nil {
		return err
	}
	// Read-modify-write of the whole day map; concurrent writers are not supported.
	day, status, err := r.tracker.Load(ctx)
	if err != nil {
		return fmt.Errorf("load daily status: %w", err)
	}
	status[taskID] = completed
	if err := r.tracker.SaveDay(ctx, day, status); err != nil {
		return fmt.Errorf("save daily status: %w", err)
	}
	return nil
}

func (r *storeTaskRepository) Toggle(ctx context.Context, taskID string) (bool, error) {
	if err := r.ensureKnown(ctx, taskID); err != nil {
		return false, err
	}
	_, status, err := r.tracker.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("load daily status: %w", err)
	}
	next := !status[taskID]
	if err := r.SetCompletion(ctx, taskID, next); err != nil {
		return false, err
	}
	return next, nil
}

func (r *storeTaskRepository) History(ctx context.Context, day dailystatus.DateKey) (dailystatus.StatusMap, error) {
	return r.tracker.LoadDay(ctx, day)
}

func (r *storeTaskRepository) ensureKnown(ctx context.Context, taskID string) error {
	defs, err := r.Definitions(ctx)
	if err != nil {
		return err
	}
	for _, d := range defs {
		if d.ID == taskID {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrNotFound, taskID)
}
