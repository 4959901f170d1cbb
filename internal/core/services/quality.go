package services

import (
	"fmt"
	"net/url"
	"unicode/utf8"

	"github.com/edukit-labs/coursegen-cli/internal/core/domain"
)

// Default dimension breakpoints: ordered (lower bound, score) pairs
// evaluated via the shared band lookup.
var defaultDimensionBands = map[domain.Dimension][]domain.Band[int]{
	domain.DimensionSources:     {{Min: 0, Value: 0}, {Min: 3, Value: 1}, {Min: 5, Value: 2}},
	domain.DimensionDataPoints:  {{Min: 0, Value: 0}, {Min: 10, Value: 1}, {Min: 20, Value: 2}},
	domain.DimensionCredibility: {{Min: 0, Value: 0}, {Min: 1, Value: 1}, {Min: 3, Value: 2}},
	domain.DimensionVolume:      {{Min: 0, Value: 0}, {Min: 5000, Value: 1}, {Min: 10000, Value: 2}},
}

// Default tier mapping over the 0-8 composite.
var defaultTierBands = []domain.Band[domain.Tier]{
	{Min: 0, Value: domain.TierNeedsImprovement},
	{Min: 3, Value: domain.TierAcceptable},
	{Min: 5, Value: domain.TierGood},
	{Min: 7, Value: domain.TierExcellent},
}

// QualityScorer computes the 0-8 composite quality score over four
// weighted dimensions. Pure transform; scoring an empty corpus yields
// zero on every dimension, never an error.
type QualityScorer struct {
	dimensionBands map[domain.Dimension][]domain.Band[int]
	tierBands      []domain.Band[domain.Tier]
}

// ScorerOption configures the quality scorer.
type ScorerOption func(*QualityScorer)

// WithDimensionBands overrides the breakpoints of one dimension.
func WithDimensionBands(dim domain.Dimension, bands []domain.Band[int]) ScorerOption {
	return func(s *QualityScorer) {
		s.dimensionBands[dim] = bands
	}
}

// WithTierBands overrides the tier mapping.
func WithTierBands(bands []domain.Band[domain.Tier]) ScorerOption {
	return func(s *QualityScorer) {
		s.tierBands = bands
	}
}

// NewQualityScorer creates a scorer. Invalid band tables are fatal
// configuration errors.
func NewQualityScorer(opts ...ScorerOption) (*QualityScorer, error) {
	s := &QualityScorer{
		dimensionBands: make(map[domain.Dimension][]domain.Band[int], len(defaultDimensionBands)),
		tierBands:      defaultTierBands,
	}
	for dim, bands := range defaultDimensionBands {
		s.dimensionBands[dim] = bands
	}
	for _, opt := range opts {
		opt(s)
	}

	for dim, bands := range s.dimensionBands {
		if err := domain.ValidateBands(bands); err != nil {
			return nil, fmt.Errorf("quality scorer: dimension %s: %w", dim, err)
		}
	}
	if err := domain.ValidateBands(s.tierBands); err != nil {
		return nil, fmt.Errorf("quality scorer: tier bands: %w", err)
	}
	return s, nil
}

// Score computes the quality report for a corpus.
func (s *QualityScorer) Score(corpus domain.Corpus) domain.QualityReport {
	summary := domain.QualitySummary{
		TotalSources:    len(corpus.Documents),
		TotalDataPoints: corpus.TotalNumericMentions(),
		CredibleSources: corpus.CredibleCount(domain.CredibilityMedium),
		TotalWords:      corpus.TotalWords(),
		WebSources:      corpus.CountByOrigin(domain.OriginWeb),
		VideoSources:    corpus.CountByOrigin(domain.OriginVideo),
	}

	scores := map[domain.Dimension]int{
		domain.DimensionSources:     domain.LookupBand(s.dimensionBands[domain.DimensionSources], float64(summary.TotalSources)),
		domain.DimensionDataPoints:  domain.LookupBand(s.dimensionBands[domain.DimensionDataPoints], float64(summary.TotalDataPoints)),
		domain.DimensionCredibility: domain.LookupBand(s.dimensionBands[domain.DimensionCredibility], float64(summary.CredibleSources)),
		domain.DimensionVolume:      domain.LookupBand(s.dimensionBands[domain.DimensionVolume], float64(summary.TotalWords)),
	}

	total := 0
	for _, dim := range domain.Dimensions {
		total += scores[dim]
	}

	return domain.QualityReport{
		DimensionScores: scores,
		TotalScore:      total,
		Tier:            domain.LookupBand(s.tierBands, float64(total)),
		Summary:         summary,
		SourceChecks:    sourceChecks(corpus),
		Recommendations: s.recommendations(corpus, summary),
	}
}

// sourceChecks gathers per-document diagnostics. Checks are advisory
// and never influence the dimension scores beyond what the summary
// already captures.
func sourceChecks(corpus domain.Corpus) []domain.SourceCheck {
	checks := make([]domain.SourceCheck, 0, len(corpus.Documents))
	for _, d := range corpus.Documents {
		length := utf8.RuneCountInString(d.Text)
		checks = append(checks, domain.SourceCheck{
			SourceID:      d.SourceID,
			URL:           d.URL,
			URLValid:      urlValid(d.URL),
			HasContent:    length > 100 || d.WordCount > 100,
			ContentLength: length,
			DataPoints:    d.NumericMentions,
			Credibility:   d.CredibilityHint,
		})
	}
	return checks
}

func urlValid(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}

func (s *QualityScorer) recommendations(corpus domain.Corpus, summary domain.QualitySummary) []string {
	var recs []string

	if corpus.IsEmpty() {
		return []string{"insufficient data: no research material was supplied; add web or video sources before generating content"}
	}

	if summary.TotalSources < 3 {
		recs = append(recs, fmt.Sprintf("few information sources (%d); collect at least 3 for balanced coverage", summary.TotalSources))
	}
	if summary.TotalDataPoints < 10 {
		recs = append(recs, fmt.Sprintf("few numeric data points (%d); add sources containing statistics", summary.TotalDataPoints))
	}
	if ratio := float64(summary.CredibleSources) / float64(summary.TotalSources); ratio < 0.5 {
		recs = append(recs, fmt.Sprintf("credible sources are scarce (%d of %d); add government, academic or established industry references", summary.CredibleSources, summary.TotalSources))
	}
	if summary.TotalWords < 5000 {
		recs = append(recs, fmt.Sprintf("low content volume (%d words); add longer or additional material", summary.TotalWords))
	}

	thin := 0
	for _, c := range sourceChecks(corpus) {
		if !c.HasContent {
			thin++
		}
	}
	if thin > 0 {
		recs = append(recs, fmt.Sprintf("%d source(s) contained little or no content; consider replacement URLs", thin))
	}

	if len(recs) == 0 {
		recs = append(recs, "research data quality is good")
	}
	if summary.TotalDataPoints > 0 {
		recs = append(recs, fmt.Sprintf("%d numeric data points detected; use them as concrete examples in the course", summary.TotalDataPoints))
	}
	return recs
}
