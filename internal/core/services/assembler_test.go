package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukit-labs/coursegen-cli/internal/core/domain"
	"github.com/edukit-labs/coursegen-cli/internal/core/ports/driven"
)

// mockPromptStore implements driven.PromptStore for testing.
type mockPromptStore struct {
	templates map[string]string
	loadErr   error
	reloaded  bool
}

func (m *mockPromptStore) Load(name string) (string, error) {
	if m.loadErr != nil {
		return "", m.loadErr
	}
	return m.templates[name], nil
}

func (m *mockPromptStore) Reload() {
	m.reloaded = true
}

func testOutline() domain.CourseOutline {
	return domain.CourseOutline{
		Course: "ChatGPT Fundamentals",
		Units: []domain.OutlineUnit{
			{
				Number: 1,
				Name:   "Getting Started",
				Slides: []domain.OutlineSlide{
					{Number: 1, Title: "What is ChatGPT"},
					{Number: 2, Title: "Safety Basics"},
				},
			},
		},
	}
}

func testSpec() domain.CourseSpec {
	return domain.CourseSpec{
		Course:         "ChatGPT Fundamentals",
		LearnerProfile: "office workers new to AI",
		TargetBehavior: "draft work documents with AI assistance",
		Duration:       "30 minutes",
		Tone:           "friendly and practical",
	}
}

func newTestAssembler(t *testing.T, opts ...AssemblerOption) *PromptAssembler {
	t.Helper()
	a, err := NewPromptAssembler(opts...)
	require.NoError(t, err)
	return a
}

func TestNewPromptAssembler(t *testing.T) {
	t.Run("rejects non-positive excerpt bounds", func(t *testing.T) {
		_, err := NewPromptAssembler(WithExcerptBounds(0, 3, 500, 800))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	})

	t.Run("rejects non-positive token ceiling", func(t *testing.T) {
		_, err := NewPromptAssembler(WithTokenCeiling(0))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	})
}

func TestAssemble_OutlineOnly(t *testing.T) {
	a := newTestAssembler(t)

	doc := a.Assemble(AssembleInput{Outline: testOutline(), Spec: testSpec()})

	assert.Contains(t, doc.Text, "**Course theme**: ChatGPT Fundamentals")
	assert.Contains(t, doc.Text, "**Learner profile**: office workers new to AI")
	assert.Contains(t, doc.Text, "### Unit 1: Getting Started")
	assert.Contains(t, doc.Text, "- Slide 2: Safety Basics")
	assert.Contains(t, doc.Text, "# Your Task")
	assert.NotContains(t, doc.Text, "# Research Data")
	assert.Equal(t, domain.UsageComfortable, doc.UsageLevel)
	assert.Equal(t, domain.EstimateTokens(doc.Text), doc.EstimatedTokens)
}

func TestAssemble_EmptyOutline(t *testing.T) {
	a := newTestAssembler(t)

	doc := a.Assemble(AssembleInput{
		Outline: domain.CourseOutline{Course: "Empty Course"},
		Spec:    testSpec(),
	})

	assert.Contains(t, doc.Text, "(no slides found for this course)")
}

func TestAssemble_ResearchExcerpts(t *testing.T) {
	a := newTestAssembler(t, WithExcerptBounds(2, 1, 10, 10))

	corpus := domain.Corpus{Documents: []domain.Document{
		webDoc("w1", "https://example.com/1", 100, 0, domain.CredibilityLow),
		webDoc("w2", "https://example.com/2", 100, 0, domain.CredibilityLow),
		webDoc("w3", "https://example.com/3", 100, 0, domain.CredibilityLow),
		videoDoc("v1", 100, 0),
		videoDoc("v2", 100, 0),
	}}

	t.Run("truncates and reports omissions", func(t *testing.T) {
		doc := a.Assemble(AssembleInput{Outline: testOutline(), Spec: testSpec(), Corpus: corpus})

		assert.Contains(t, doc.Text, "### Web Research Data")
		assert.Contains(t, doc.Text, "**Source 2: w2**")
		assert.NotContains(t, doc.Text, "**Source 3: w3**")
		assert.Contains(t, doc.Text, "(1 more omitted)")
		assert.Contains(t, doc.Text, "### Video Transcript Data")
		assert.Contains(t, doc.Text, "- Excerpt: research c...")
	})

	t.Run("unabridged lifts every bound", func(t *testing.T) {
		doc := a.Assemble(AssembleInput{Outline: testOutline(), Spec: testSpec(), Corpus: corpus, Unabridged: true})

		assert.Contains(t, doc.Text, "**Source 3: w3**")
		assert.Contains(t, doc.Text, "**Video 2: v2**")
		assert.NotContains(t, doc.Text, "more omitted")
		assert.NotContains(t, doc.Text, "...")
	})
}

func TestAssemble_AnalysisSections(t *testing.T) {
	a := newTestAssembler(t)

	quality := &domain.QualityReport{
		Tier: domain.TierGood,
		Summary: domain.QualitySummary{
			TotalDataPoints: 14,
			CredibleSources: 2,
		},
		Recommendations: []string{"rec one", "rec two", "rec three", "rec four"},
	}
	terminology := &domain.TerminologyReport{
		TotalUniqueTerms: 12,
		TopTerms: []domain.Term{
			{Surface: "ChatGPT", Frequency: 45, Category: domain.CategoryTechnical, Phase: domain.PhaseIntroduction},
			{Surface: "prompt", Frequency: 20, Category: domain.CategoryGeneral, Phase: domain.PhaseNone},
		},
		CategoryCounts:  map[domain.TermCategory]int{domain.CategoryTechnical: 1, domain.CategoryGeneral: 1},
		PhaseCounts:     map[domain.LearningPhase]int{domain.PhaseIntroduction: 1},
		Recommendations: []string{"term rec one", "term rec two", "term rec three"},
	}

	corpus := domain.Corpus{Documents: []domain.Document{
		webDoc("w1", "https://example.com/1", 100, 0, domain.CredibilityLow),
	}}

	doc := a.Assemble(AssembleInput{
		Outline:     testOutline(),
		Spec:        testSpec(),
		Corpus:      corpus,
		Quality:     quality,
		Terminology: terminology,
	})

	assert.Contains(t, doc.Text, "**Quality assessment**: good")
	assert.Contains(t, doc.Text, "- Data points: 14")
	assert.Contains(t, doc.Text, "rec three")
	assert.NotContains(t, doc.Text, "rec four")

	assert.Contains(t, doc.Text, "- Recurring terms detected: 12")
	assert.Contains(t, doc.Text, "technical: 1, general: 1")
	assert.Contains(t, doc.Text, "ChatGPT, prompt")
	assert.Contains(t, doc.Text, "term rec two")
	assert.NotContains(t, doc.Text, "term rec three")
}

func TestAssemble_TemplateStore(t *testing.T) {
	t.Run("custom templates win", func(t *testing.T) {
		a := newTestAssembler(t)
		a.SetPromptStore(&mockPromptStore{templates: map[string]string{
			driven.PromptCourseSystem: "CUSTOM SYSTEM %s %s %s %s %s",
			driven.PromptCourseTask:   "CUSTOM TASK",
		}})

		doc := a.Assemble(AssembleInput{Outline: testOutline(), Spec: testSpec()})

		assert.Contains(t, doc.Text, "CUSTOM SYSTEM ChatGPT Fundamentals")
		assert.Contains(t, doc.Text, "CUSTOM TASK")
		assert.NotContains(t, doc.Text, "# Your Task")
	})

	t.Run("load failure falls back to embedded defaults", func(t *testing.T) {
		a := newTestAssembler(t)
		a.SetPromptStore(&mockPromptStore{loadErr: errors.New("boom")})

		doc := a.Assemble(AssembleInput{Outline: testOutline(), Spec: testSpec()})

		assert.Contains(t, doc.Text, "# Your Task")
	})
}

func TestAssemble_UsageLevel(t *testing.T) {
	a := newTestAssembler(t, WithTokenCeiling(10))

	doc := a.Assemble(AssembleInput{Outline: testOutline(), Spec: testSpec()})

	assert.Greater(t, doc.EstimatedTokens, 10)
	assert.Equal(t, domain.UsageOverLimit, doc.UsageLevel)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "short", truncateRunes("short", 10))
	assert.Equal(t, "abcde...", truncateRunes("abcdefgh", 5))
	assert.Equal(t, "日本語...", truncateRunes("日本語のテキスト", 3))
}
