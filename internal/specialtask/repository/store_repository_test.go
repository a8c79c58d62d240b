package repository

import (
	"context"
	"testing"

	"household-backend/internal/specialtask/domain"
	"household-backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (SpecialTaskRepository, *store.MemoryStore) {
	t.Helper()
	s := store.NewMemoryStore()
	return NewStoreSpecialTaskRepository(s), s
}

func task(id string) domain.SpecialTask {
	return domain.SpecialTask{ID: id, ContentZh: "zh " + id, ContentEn: "en " + id, ContentID: "id " + id, CreatedAt: 1}
}

func TestListEmpty(t *testing.T) {
	repo, _ := setupRepo(t)

	tasks, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.NotNil(t, tasks)
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	for _, id := range []string{"3", "1", "2"} {
		require.NoError(t, repo.Add(ctx, task(id)))
	}

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "3", tasks[0].ID)
	assert.Equal(t, "1", tasks[1].ID)
	assert.Equal(t, "2", tasks[2].ID)
}

func TestCompleteIdempotent(t *testing.T) {
	repo, s := setupRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Add(ctx, task("a")))
	require.NoError(t, repo.Add(ctx, task("b")))

	require.NoError(t, repo.Complete(ctx, "a"))
	first, _, _ := s.Get(ctx, SpecialTasksKey)
	require.NoError(t, repo.Complete(ctx, "a"))
	second, _, _ := s.Get(ctx, SpecialTasksKey)
	assert.JSONEq(t, first, second)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "b", active[0].ID)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.True(t, all[0].IsCompleted)
}

func TestCompleteUnknownIsNoop(t *testing.T) {
	repo, s := setupRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Add(ctx, task("a")))
	before, _, _ := s.Get(ctx, SpecialTasksKey)

	require.NoError(t, repo.Complete(ctx, "zzz"))
	after, _, _ := s.Get(ctx, SpecialTasksKey)
	assert.Equal(t, before, after)
}

func TestPersistedShape(t *testing.T) {
	repo, s := setupRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Add(ctx, domain.SpecialTask{ID: "1700000000000", ContentZh: "買牛奶", ContentEn: "Buy milk", ContentID: "Beli susu", CreatedAt: 1700000000000}))

	raw, ok, err := s.Get(ctx, SpecialTasksKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"1700000000000","content_zh":"買牛奶","content_en":"Buy milk","content_id":"Beli susu","is_completed":false,"created_at":1700000000000}]`, raw)
}

func TestCorruptListTreatedAsEmpty(t *testing.T) {
	repo, s := setupRepo(t)
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, SpecialTasksKey, "not json"))

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
