package usecase

import (
	"context"
	"fmt"
	"log"

	"household-backend/internal/dailystatus"
	"household-backend/internal/task/domain"
	"household-backend/internal/task/repository"
)

// ValidationError reports a request the usecase refuses to act on.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{taskRepo: taskRepo}
}

func (u *taskUsecase) ListTasks(ctx context.Context) ([]domain.RenderedTask, error) {
	return u.taskRepo.ListTasks(ctx)
}

func (u *taskUsecase) SetCompletion(ctx context.Context, taskID string, completed bool) ([]domain.RenderedTask, error) {
	if err := u.taskRepo.SetCompletion(ctx, taskID, completed); err != nil {
		return nil, err
	}
	log.Printf("[TaskUsecase] %s completed=%t", taskID, completed)
	return u.taskRepo.ListTasks(ctx)
}

func (u *taskUsecase) Toggle(ctx context.Context, taskID string) ([]domain.RenderedTask, error) {
	completed, err := u.taskRepo.Toggle(ctx, taskID)
	if err != nil {
		return nil, err
	}
	log.Printf("[TaskUsecase] %s toggled to completed=%t", taskID, completed)
	return u.taskRepo.ListTasks(ctx)
}

func (u *taskUsecase) SaveDefinitions(ctx context.Context, defs []domain.TaskDefinition) error {
	if err := domain.ValidateDefinitions(defs); err != nil {
		return &ValidationError{Msg: err.Error()}
	}
	if err := u.taskRepo.SaveDefinitions(ctx, defs); err != nil {
		return fmt.Errorf("save task definitions: %w", err)
	}
	log.Printf("[TaskUsecase] Saved %d task definitions", len(defs))
	return nil
}

func (u *taskUsecase) History(ctx context.Context, date string) (dailystatus.StatusMap, error) {
	day, err := dailystatus.ParseDateKey(date)
	if err != nil {
		return nil, &ValidationError{Msg: err.Error()}
	}
	return u.taskRepo.History(ctx, day)
}
