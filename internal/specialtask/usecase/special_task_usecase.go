package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"household-backend/internal/specialtask/domain"
	"household-backend/internal/specialtask/repository"
	"household-backend/pkg/ai"
	"household-backend/pkg/fuzzy"
)

type specialTaskUsecase struct {
	repo       repository.SpecialTaskRepository
	translator Translator
	notifier   Notifier
	now        func() time.Time
}

// NewSpecialTaskUsecase creates a new instance of specialTaskUsecase.
// notifier may be nil.
func NewSpecialTaskUsecase(repo repository.SpecialTaskRepository, translator Translator, notifier Notifier) SpecialTaskUsecase {
	return &specialTaskUsecase{repo: repo, translator: translator, notifier: notifier, now: time.Now}
}

func (u *specialTaskUsecase) Assign(ctx context.Context, instruction string) (*AssignResult, error) {
	text := strings.TrimSpace(instruction)
	if text == "" {
		return nil, domain.ErrEmptyInstruction
	}

	translated := true
	tr, err := u.translator.Translate(ctx, text)
	if err != nil {
		var terr *ai.TranslationError
		if !errors.As(err, &terr) {
			return nil, err
		}
		log.Printf("[SpecialTask] Translation failed, storing original text: %v", err)
		tr = ai.Translation{}
		translated = false
	}
	tr = tr.WithFallback(text)

	existing, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	created := u.now().UnixMilli()
	task := domain.SpecialTask{
		ID:        nextID(existing, created),
		ContentZh: tr.Zh,
		ContentEn: tr.En,
		ContentID: tr.ID,
		CreatedAt: created,
	}
	if err := u.repo.Add(ctx, task); err != nil {
		return nil, err
	}
	log.Printf("[SpecialTask] Assigned %s (translated=%t)", task.ID, translated)

	if u.notifier != nil {
		if err := u.notifier.NotifySpecialTask(ctx, task); err != nil {
			log.Printf("[SpecialTask] Notify failed for %s: %v", task.ID, err)
		}
	}

	return &AssignResult{Task: task, Translated: translated}, nil
}

// nextID uses the creation millisecond, bumped past ids already taken.
func nextID(existing []domain.SpecialTask, millis int64) string {
	taken := make(map[string]struct{}, len(existing))
	for _, t := range existing {
		taken[t.ID] = struct{}{}
	}
	for {
		id := strconv.FormatInt(millis, 10)
		if _, dup := taken[id]; !dup {
			return id
		}
		millis++
	}
}

func (u *specialTaskUsecase) List(ctx context.Context, all bool) ([]domain.SpecialTask, error) {
	if all {
		return u.repo.List(ctx)
	}
	return u.repo.ListActive(ctx)
}

func (u *specialTaskUsecase) Search(ctx context.Context, query string) ([]domain.SpecialTask, error) {
	tasks, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return tasks, nil
	}

	type scored struct {
		task  domain.SpecialTask
		score float64
	}
	var hits []scored
	for _, t := range tasks {
		if s := fuzzy.Score(query, t.ContentZh, t.ContentEn, t.ContentID); s > 0 {
			hits = append(hits, scored{task: t, score: s})
		}
	}
	// Best match first, newest first among equals
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].task.CreatedAt > hits[j].task.CreatedAt
	})

	results := make([]domain.SpecialTask, 0, len(hits))
	for _, h := range hits {
		results = append(results, h.task)
	}
	return results, nil
}

func (u *specialTaskUsecase) Complete(ctx context.Context, id string) ([]domain.SpecialTask, error) {
	if err := u.repo.Complete(ctx, id); err != nil {
		return nil, err
	}
	return u.repo.ListActive(ctx)
}
