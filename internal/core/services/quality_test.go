package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukit-labs/coursegen-cli/internal/core/domain"
)

func newTestScorer(t *testing.T) *QualityScorer {
	t.Helper()
	s, err := NewQualityScorer()
	require.NoError(t, err)
	return s
}

func webDoc(id, url string, words, mentions int, cred domain.Credibility) domain.Document {
	return domain.Document{
		SourceID:           id,
		Origin:             domain.OriginWeb,
		URL:                url,
		Title:              id,
		Text:               strings.Repeat("research content ", 10),
		WordCount:          words,
		CredibilityHint:    cred,
		NumericMentions:    mentions,
		NumericDataPresent: mentions > 0,
	}
}

func videoDoc(id string, words, mentions int) domain.Document {
	return domain.Document{
		SourceID:           id,
		Origin:             domain.OriginVideo,
		URL:                "https://video.example.com/" + id,
		Title:              id,
		Text:               strings.Repeat("spoken content ", 10),
		WordCount:          words,
		CredibilityHint:    domain.CredibilityLow,
		NumericMentions:    mentions,
		NumericDataPresent: mentions > 0,
	}
}

func TestNewQualityScorer(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		s, err := NewQualityScorer()
		require.NoError(t, err)
		assert.NotNil(t, s)
	})

	t.Run("rejects non-ascending dimension bands", func(t *testing.T) {
		_, err := NewQualityScorer(WithDimensionBands(domain.DimensionSources, []domain.Band[int]{
			{Min: 5, Value: 2}, {Min: 3, Value: 1},
		}))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	})

	t.Run("rejects empty tier bands", func(t *testing.T) {
		_, err := NewQualityScorer(WithTierBands(nil))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	})
}

func TestScore_EmptyCorpus(t *testing.T) {
	s := newTestScorer(t)

	report := s.Score(domain.Corpus{})

	assert.Equal(t, 0, report.TotalScore)
	assert.Equal(t, domain.TierNeedsImprovement, report.Tier)
	for _, dim := range domain.Dimensions {
		assert.Equal(t, 0, report.DimensionScores[dim], "dimension %s", dim)
	}
	require.Len(t, report.Recommendations, 1)
	assert.Contains(t, report.Recommendations[0], "insufficient data")
}

// Mixed corpus: five sources across both origins, one high-trust
// document, three numeric mentions, over fifty thousand words.
func TestScore_MixedCorpus(t *testing.T) {
	s := newTestScorer(t)

	corpus := domain.Corpus{Documents: []domain.Document{
		webDoc("w1", "https://stats.example.go.jp/ai", 8000, 2, domain.CredibilityHigh),
		webDoc("w2", "https://blog.example.com/a", 6000, 0, domain.CredibilityLow),
		webDoc("w3", "https://blog.example.com/b", 5238, 0, domain.CredibilityLow),
		webDoc("w4", "https://blog.example.com/c", 3000, 0, domain.CredibilityLow),
		videoDoc("v1", 30041, 1),
	}}

	report := s.Score(corpus)

	assert.Equal(t, 2, report.DimensionScores[domain.DimensionSources])
	assert.Equal(t, 0, report.DimensionScores[domain.DimensionDataPoints])
	assert.Equal(t, 1, report.DimensionScores[domain.DimensionCredibility])
	assert.Equal(t, 2, report.DimensionScores[domain.DimensionVolume])
	assert.Equal(t, 5, report.TotalScore)
	assert.Equal(t, domain.TierGood, report.Tier)

	assert.Equal(t, 5, report.Summary.TotalSources)
	assert.Equal(t, 4, report.Summary.WebSources)
	assert.Equal(t, 1, report.Summary.VideoSources)
	assert.Equal(t, 3, report.Summary.TotalDataPoints)
	assert.Equal(t, 1, report.Summary.CredibleSources)
	assert.Equal(t, 52279, report.Summary.TotalWords)
}

// Medium-trust sources (established industry sites) count toward the
// credibility dimension alongside government and academic domains.
func TestScore_MediumCredibilityCounts(t *testing.T) {
	s := newTestScorer(t)

	corpus := domain.Corpus{Documents: []domain.Document{
		webDoc("w1", "https://www.nikkei.com/article/ai", 4000, 4, domain.CredibilityMedium),
		webDoc("w2", "https://forbes.com/sites/ai-at-work", 4000, 4, domain.CredibilityMedium),
		webDoc("w3", "https://qiita.com/items/chatgpt", 4000, 4, domain.CredibilityMedium),
	}}

	report := s.Score(corpus)

	assert.Equal(t, 3, report.Summary.CredibleSources)
	assert.Equal(t, 2, report.DimensionScores[domain.DimensionCredibility])
	assert.NotContains(t, strings.Join(report.Recommendations, "\n"), "credible sources are scarce")
}

func TestScore_TierBoundaries(t *testing.T) {
	tests := []struct {
		total int
		want  domain.Tier
	}{
		{0, domain.TierNeedsImprovement},
		{2, domain.TierNeedsImprovement},
		{3, domain.TierAcceptable},
		{4, domain.TierAcceptable},
		{5, domain.TierGood},
		{6, domain.TierGood},
		{7, domain.TierExcellent},
		{8, domain.TierExcellent},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.LookupBand(defaultTierBands, float64(tt.total)), "total %d", tt.total)
	}
}

func TestScore_SourceChecks(t *testing.T) {
	s := newTestScorer(t)

	thin := domain.Document{
		SourceID:        "thin",
		Origin:          domain.OriginWeb,
		URL:             "not a url",
		Text:            "short",
		WordCount:       5,
		CredibilityHint: domain.CredibilityLow,
	}
	solid := webDoc("solid", "https://example.edu/paper", 9000, 12, domain.CredibilityHigh)

	report := s.Score(domain.Corpus{Documents: []domain.Document{thin, solid}})

	require.Len(t, report.SourceChecks, 2)

	check := report.SourceChecks[0]
	assert.False(t, check.URLValid)
	assert.False(t, check.HasContent)
	assert.Equal(t, 5, check.ContentLength)

	check = report.SourceChecks[1]
	assert.True(t, check.URLValid)
	assert.True(t, check.HasContent)
	assert.Equal(t, domain.CredibilityHigh, check.Credibility)
}

func TestScore_Recommendations(t *testing.T) {
	s := newTestScorer(t)

	t.Run("flags weak corpus", func(t *testing.T) {
		corpus := domain.Corpus{Documents: []domain.Document{
			webDoc("w1", "https://blog.example.com/a", 800, 1, domain.CredibilityLow),
		}}

		recs := strings.Join(s.Score(corpus).Recommendations, "\n")
		assert.Contains(t, recs, "few information sources")
		assert.Contains(t, recs, "few numeric data points")
		assert.Contains(t, recs, "credible sources are scarce")
		assert.Contains(t, recs, "low content volume")
	})

	t.Run("strong corpus reports good quality", func(t *testing.T) {
		corpus := domain.Corpus{Documents: []domain.Document{
			webDoc("w1", "https://a.example.go.jp", 4000, 8, domain.CredibilityHigh),
			webDoc("w2", "https://b.example.edu", 4000, 8, domain.CredibilityHigh),
			webDoc("w3", "https://c.example.gov", 4000, 8, domain.CredibilityHigh),
		}}

		recs := s.Score(corpus).Recommendations
		require.Len(t, recs, 2)
		assert.Contains(t, recs[0], "research data quality is good")
		assert.Contains(t, recs[1], "24 numeric data points detected")
	})
}
