package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukit-labs/coursegen-cli/internal/core/domain"
	"github.com/edukit-labs/coursegen-cli/internal/core/ports/driven"
)

func newTestStore(t *testing.T) driven.ReportStore {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store.ReportStore()
}

func testProject(id string, created time.Time) *domain.Project {
	return &domain.Project{
		ID:        id,
		Name:      "pilot run " + id,
		Course:    "ChatGPT Fundamentals",
		CreatedAt: created,
	}
}

func TestNewStore(t *testing.T) {
	t.Run("creates database and runs migrations", func(t *testing.T) {
		store, err := NewStore(t.TempDir())
		require.NoError(t, err)
		defer store.Close()

		assert.NotEmpty(t, store.Path())
	})

	t.Run("reopening is idempotent", func(t *testing.T) {
		dir := t.TempDir()

		store, err := NewStore(dir)
		require.NoError(t, err)
		require.NoError(t, store.Close())

		store, err = NewStore(dir)
		require.NoError(t, err)
		assert.NoError(t, store.Close())
	})
}

func TestReportStore_Projects(t *testing.T) {
	ctx := context.Background()

	t.Run("save and get", func(t *testing.T) {
		store := newTestStore(t)
		created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

		require.NoError(t, store.SaveProject(ctx, testProject("p1", created)))

		got, err := store.GetProject(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, "pilot run p1", got.Name)
		assert.Equal(t, "ChatGPT Fundamentals", got.Course)
		assert.True(t, got.CreatedAt.Equal(created))
	})

	t.Run("save updates name but keeps creation time", func(t *testing.T) {
		store := newTestStore(t)
		created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

		require.NoError(t, store.SaveProject(ctx, testProject("p1", created)))

		renamed := testProject("p1", created.Add(time.Hour))
		renamed.Name = "renamed"
		require.NoError(t, store.SaveProject(ctx, renamed))

		got, err := store.GetProject(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, "renamed", got.Name)
		assert.True(t, got.CreatedAt.Equal(created))
	})

	t.Run("get missing returns not found", func(t *testing.T) {
		store := newTestStore(t)

		_, err := store.GetProject(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("empty ID is rejected", func(t *testing.T) {
		store := newTestStore(t)

		err := store.SaveProject(ctx, &domain.Project{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("list is newest first", func(t *testing.T) {
		store := newTestStore(t)
		base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

		require.NoError(t, store.SaveProject(ctx, testProject("old", base)))
		require.NoError(t, store.SaveProject(ctx, testProject("new", base.Add(time.Hour))))

		projects, err := store.ListProjects(ctx)
		require.NoError(t, err)
		require.Len(t, projects, 2)
		assert.Equal(t, "new", projects[0].ID)
		assert.Equal(t, "old", projects[1].ID)
	})

	t.Run("delete removes project and reports", func(t *testing.T) {
		store := newTestStore(t)

		require.NoError(t, store.SaveProject(ctx, testProject("p1", time.Now().UTC())))
		require.NoError(t, store.SaveReport(ctx, "p1", domain.ReportQuality, []byte(`{"tier":"good"}`)))

		require.NoError(t, store.DeleteProject(ctx, "p1"))

		_, err := store.GetProject(ctx, "p1")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		_, err = store.GetReport(ctx, "p1", domain.ReportQuality)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("delete missing returns not found", func(t *testing.T) {
		store := newTestStore(t)

		assert.ErrorIs(t, store.DeleteProject(ctx, "missing"), domain.ErrNotFound)
	})
}

func TestReportStore_Reports(t *testing.T) {
	ctx := context.Background()

	t.Run("save and get round-trips the payload", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.SaveProject(ctx, testProject("p1", time.Now().UTC())))

		payload := []byte(`{"total_score":5,"tier":"good"}`)
		require.NoError(t, store.SaveReport(ctx, "p1", domain.ReportQuality, payload))

		got, err := store.GetReport(ctx, "p1", domain.ReportQuality)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("same kind replaces previous payload", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.SaveProject(ctx, testProject("p1", time.Now().UTC())))

		require.NoError(t, store.SaveReport(ctx, "p1", domain.ReportPrompt, []byte("v1")))
		require.NoError(t, store.SaveReport(ctx, "p1", domain.ReportPrompt, []byte("v2")))

		got, err := store.GetReport(ctx, "p1", domain.ReportPrompt)
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), got)
	})

	t.Run("kinds are stored independently", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.SaveProject(ctx, testProject("p1", time.Now().UTC())))

		require.NoError(t, store.SaveReport(ctx, "p1", domain.ReportQuality, []byte("q")))
		require.NoError(t, store.SaveReport(ctx, "p1", domain.ReportTerminology, []byte("t")))

		q, err := store.GetReport(ctx, "p1", domain.ReportQuality)
		require.NoError(t, err)
		assert.Equal(t, []byte("q"), q)

		_, err = store.GetReport(ctx, "p1", domain.ReportPrompt)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
