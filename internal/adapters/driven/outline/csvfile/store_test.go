package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukit-labs/coursegen-cli/internal/core/domain"
)

const samplePlan = `カテゴリ,講座名,ユニット番号,ユニット名,スライド番号,スライドタイトル
AI,ChatGPT Fundamentals,1,Getting Started,2,Safety Basics
AI,ChatGPT Fundamentals,1,Getting Started,1,What is ChatGPT
AI,ChatGPT Fundamentals,2,Prompting,1,Writing Good Prompts
カテゴリ,講座名,ユニット番号,ユニット名,スライド番号,スライドタイトル
DX,Data Literacy,1,Reading Charts,1,Chart Types
AI,ChatGPT Fundamentals,2,Prompting,2,Iterating on Prompts
,,,,,
AI,Broken Row,x,Bad Unit,1,Skipped
`

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	t.Run("builds sorted outline", func(t *testing.T) {
		path := writePlan(t, samplePlan)

		outline, err := store.Load(ctx, path, "ChatGPT Fundamentals", nil)
		require.NoError(t, err)

		require.Len(t, outline.Units, 2)
		assert.Equal(t, "Getting Started", outline.Units[0].Name)
		require.Len(t, outline.Units[0].Slides, 2)
		assert.Equal(t, "What is ChatGPT", outline.Units[0].Slides[0].Title)
		assert.Equal(t, "Safety Basics", outline.Units[0].Slides[1].Title)
		assert.Equal(t, 2, outline.Units[1].Number)
		assert.Equal(t, 4, outline.SlideCount())
	})

	t.Run("filters requested units", func(t *testing.T) {
		path := writePlan(t, samplePlan)

		outline, err := store.Load(ctx, path, "ChatGPT Fundamentals", []int{2})
		require.NoError(t, err)

		require.Len(t, outline.Units, 1)
		assert.Equal(t, "Prompting", outline.Units[0].Name)
		assert.Len(t, outline.Units[0].Slides, 2)
	})

	t.Run("unknown unit lists available ones", func(t *testing.T) {
		path := writePlan(t, samplePlan)

		_, err := store.Load(ctx, path, "ChatGPT Fundamentals", []int{9})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnitNotFound)
		assert.Contains(t, err.Error(), "available units: 1, 2")
	})

	t.Run("unknown course suggests similar names", func(t *testing.T) {
		path := writePlan(t, samplePlan)

		_, err := store.Load(ctx, path, "chatgpt", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrCourseNotFound)
		assert.Contains(t, err.Error(), "ChatGPT Fundamentals")
	})

	t.Run("missing file maps to outline unavailable", func(t *testing.T) {
		_, err := store.Load(ctx, filepath.Join(t.TempDir(), "absent.csv"), "Any", nil)
		assert.ErrorIs(t, err, domain.ErrOutlineUnavailable)
	})
}

func TestCourses(t *testing.T) {
	store := NewStore()
	path := writePlan(t, samplePlan)

	courses, err := store.Courses(context.Background(), path)
	require.NoError(t, err)

	// The malformed "Broken Row" entry never parses into a slide row.
	assert.Equal(t, []string{"ChatGPT Fundamentals", "Data Literacy"}, courses)
}
