package services

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/edukit-labs/coursegen-cli/internal/core/domain"
)

// Extraction caps and filters. Fixed configuration, overridable per
// extractor via options.
const (
	// DefaultCandidateTerms caps the full candidate set.
	DefaultCandidateTerms = 50

	// DefaultSurfacedTerms caps the terms surfaced in reports.
	DefaultSurfacedTerms = 30

	// MinTermLength is the minimum surface form length in runes.
	MinTermLength = 2

	// MinTermFrequency is the minimum corpus-wide occurrence count.
	MinTermFrequency = 2

	// DefaultLowShare is the distribution share under which a phase
	// is flagged as under-represented.
	DefaultLowShare = 0.2

	// DefaultHighShare is the distribution share over which a category
	// is flagged as dominating.
	DefaultHighShare = 0.5
)

// tokenPattern splits text into candidate terms: contiguous runs of
// letters and digits, script-agnostic. No stemming, no POS tagging -
// extraction is frequency/heuristic based by design.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)

// TerminologyExtractor derives a frequency-ranked term list from the
// corpus and classifies each term against the injected taxonomy.
// Fully deterministic given identical corpus and configuration.
type TerminologyExtractor struct {
	taxonomy     domain.Taxonomy
	candidateCap int
	surfacedCap  int
	lowShare     float64
	highShare    float64
}

// ExtractorOption configures the terminology extractor.
type ExtractorOption func(*TerminologyExtractor)

// WithCandidateCap sets the candidate set truncation.
func WithCandidateCap(n int) ExtractorOption {
	return func(e *TerminologyExtractor) {
		e.candidateCap = n
	}
}

// WithSurfacedCap sets how many terms reports surface.
func WithSurfacedCap(n int) ExtractorOption {
	return func(e *TerminologyExtractor) {
		e.surfacedCap = n
	}
}

// WithShareThresholds sets the distribution imbalance thresholds.
func WithShareThresholds(low, high float64) ExtractorOption {
	return func(e *TerminologyExtractor) {
		e.lowShare = low
		e.highShare = high
	}
}

// NewTerminologyExtractor creates an extractor with the given taxonomy.
// Invalid caps or thresholds are fatal configuration errors.
func NewTerminologyExtractor(taxonomy domain.Taxonomy, opts ...ExtractorOption) (*TerminologyExtractor, error) {
	if err := taxonomy.Validate(); err != nil {
		return nil, fmt.Errorf("terminology extractor: %w", err)
	}

	e := &TerminologyExtractor{
		taxonomy:     taxonomy,
		candidateCap: DefaultCandidateTerms,
		surfacedCap:  DefaultSurfacedTerms,
		lowShare:     DefaultLowShare,
		highShare:    DefaultHighShare,
	}
	for _, opt := range opts {
		opt(e)
	}

	switch {
	case e.candidateCap <= 0:
		return nil, fmt.Errorf("terminology extractor: %w: candidate cap must be positive", domain.ErrInvalidConfig)
	case e.surfacedCap <= 0:
		return nil, fmt.Errorf("terminology extractor: %w: surfaced cap must be positive", domain.ErrInvalidConfig)
	case e.surfacedCap > e.candidateCap:
		return nil, fmt.Errorf("terminology extractor: %w: surfaced cap exceeds candidate cap", domain.ErrInvalidConfig)
	case e.lowShare < 0 || e.highShare > 1 || e.lowShare > e.highShare:
		return nil, fmt.Errorf("terminology extractor: %w: share thresholds out of range", domain.ErrInvalidConfig)
	}
	return e, nil
}

// termStat tracks one candidate during aggregation.
type termStat struct {
	surface   string
	frequency int
	firstSeen int // running token index of first occurrence
}

// Extract returns the terminology report for a corpus. An empty corpus
// yields an empty report, never an error.
func (e *TerminologyExtractor) Extract(corpus domain.Corpus, theme string) domain.TerminologyReport {
	stats := e.aggregate(corpus)

	// Frequency descending; ties broken by first occurrence so
	// repeated runs over the same corpus are byte-identical.
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].frequency != stats[j].frequency {
			return stats[i].frequency > stats[j].frequency
		}
		return stats[i].firstSeen < stats[j].firstSeen
	})

	report := domain.TerminologyReport{
		CourseTheme:      theme,
		TotalUniqueTerms: len(stats),
		CategoryCounts:   make(map[domain.TermCategory]int),
		PhaseCounts:      make(map[domain.LearningPhase]int),
	}

	if len(stats) > e.candidateCap {
		stats = stats[:e.candidateCap]
	}
	surfaced := stats
	if len(surfaced) > e.surfacedCap {
		surfaced = surfaced[:e.surfacedCap]
	}

	for _, st := range surfaced {
		term := domain.Term{
			Surface:   st.surface,
			Frequency: st.frequency,
			Category:  e.taxonomy.Categorize(st.surface),
			Phase:     e.taxonomy.Phase(st.surface),
		}
		report.TopTerms = append(report.TopTerms, term)
		report.CategoryCounts[term.Category]++
		if term.Phase != domain.PhaseNone {
			report.PhaseCounts[term.Phase]++
		}
	}

	report.Recommendations = e.recommendations(report)
	return report
}

// aggregate counts term frequency across the corpus, recording the
// first occurrence position for tie-breaking. Stop terms and short
// tokens are filtered here; the frequency floor is applied afterwards.
func (e *TerminologyExtractor) aggregate(corpus domain.Corpus) []termStat {
	index := make(map[string]*termStat)
	var order []*termStat
	position := 0

	for _, doc := range corpus.Documents {
		// Titles carry high-signal vocabulary; the original feeds
		// them into extraction alongside the body text.
		for _, token := range tokenPattern.FindAllString(doc.Title+" "+doc.Text, -1) {
			position++
			if utf8.RuneCountInString(token) < MinTermLength {
				continue
			}
			if e.taxonomy.IsStopTerm(token) {
				continue
			}
			if st, ok := index[token]; ok {
				st.frequency++
				continue
			}
			st := &termStat{surface: token, frequency: 1, firstSeen: position}
			index[token] = st
			order = append(order, st)
		}
	}

	kept := make([]termStat, 0, len(order))
	for _, st := range order {
		if st.frequency >= MinTermFrequency {
			kept = append(kept, *st)
		}
	}
	return kept
}

func (e *TerminologyExtractor) recommendations(report domain.TerminologyReport) []string {
	var recs []string
	n := len(report.TopTerms)
	if n == 0 {
		return []string{"no recurring terms found; supply more research material to build a vocabulary"}
	}

	if float64(report.CategoryCounts[domain.CategoryTechnical]) > float64(n)*e.highShare {
		recs = append(recs, "technical terms dominate; include a glossary for beginners")
	}
	if float64(report.CategoryCounts[domain.CategoryBusiness]) > float64(n)*e.highShare {
		recs = append(recs, "business terms dominate; include practical workplace examples")
	}

	// Phase shares are computed over phased terms only; terms with no
	// phase cue stay out of the denominator.
	phased := 0
	for _, count := range report.PhaseCounts {
		phased += count
	}
	if phased > 0 {
		if float64(report.PhaseCounts[domain.PhaseIntroduction]) < float64(phased)*e.lowShare {
			recs = append(recs, "few introduction-phase terms; expand coverage of basic concepts")
		}
		if float64(report.PhaseCounts[domain.PhaseApplication]) < float64(phased)*e.lowShare {
			recs = append(recs, "few application-phase terms; add practical examples and case studies")
		}
	}

	if len(recs) == 0 {
		recs = append(recs, "term distribution is balanced")
	}

	top := report.TopTerms
	if len(top) > 5 {
		top = top[:5]
	}
	names := make([]string, 0, len(top))
	for _, t := range top {
		names = append(names, t.Surface)
	}
	recs = append(recs, fmt.Sprintf("key terms: %s; define each where it first appears", strings.Join(names, ", ")))
	return recs
}
