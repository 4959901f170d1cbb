package domain

// Dimension names one of the four independent quality sub-scores.
type Dimension string

const (
	// DimensionSources scores the number of information sources.
	DimensionSources Dimension = "sources"

	// DimensionDataPoints scores aggregate numeric mentions.
	DimensionDataPoints Dimension = "data_points"

	// DimensionCredibility scores high-trust source count.
	DimensionCredibility Dimension = "credibility"

	// DimensionVolume scores total content word count.
	DimensionVolume Dimension = "volume"
)

// Dimensions lists all quality dimensions in report order.
var Dimensions = []Dimension{
	DimensionSources,
	DimensionDataPoints,
	DimensionCredibility,
	DimensionVolume,
}

// Tier is the categorical quality label derived from the total score.
type Tier string

const (
	// TierExcellent is total score >= 7.
	TierExcellent Tier = "excellent"

	// TierGood is total score >= 5.
	TierGood Tier = "good"

	// TierAcceptable is total score >= 3.
	TierAcceptable Tier = "acceptable"

	// TierNeedsImprovement is everything below.
	TierNeedsImprovement Tier = "needs_improvement"
)

// SourceCheck records the per-document diagnostics gathered while
// scoring. Checks never affect pipeline control flow; they surface
// in the serialized report for callers to display.
type SourceCheck struct {
	// SourceID is the document this check belongs to.
	SourceID string `json:"source_id"`

	// URL is the document location.
	URL string `json:"url"`

	// URLValid reports whether the URL parsed with a scheme and host.
	URLValid bool `json:"url_valid"`

	// HasContent reports whether usable text was present.
	HasContent bool `json:"has_content"`

	// ContentLength is the text length in runes.
	ContentLength int `json:"content_length"`

	// DataPoints is the numeric mention count for this document.
	DataPoints int `json:"data_points"`

	// Credibility is the trust level inferred from the URL.
	Credibility Credibility `json:"credibility"`
}

// QualitySummary aggregates the corpus-level inputs behind the
// dimension scores.
type QualitySummary struct {
	// TotalSources counts documents across both origins.
	TotalSources int `json:"total_sources"`

	// TotalDataPoints counts numeric mentions across the corpus.
	TotalDataPoints int `json:"total_data_points"`

	// CredibleSources counts documents with medium or high credibility.
	CredibleSources int `json:"credible_sources"`

	// TotalWords is the combined word count of all documents.
	TotalWords int `json:"total_words"`

	// WebSources and VideoSources split TotalSources by origin.
	WebSources   int `json:"web_sources"`
	VideoSources int `json:"video_sources"`
}

// QualityReport is the quality scorer's output. The report is derived,
// never persisted except through its JSON serialization.
//
// Invariant: TotalScore == sum of DimensionScores values, each in {0,1,2}.
type QualityReport struct {
	// DimensionScores maps each named dimension to its 0-2 score.
	DimensionScores map[Dimension]int `json:"dimension_scores"`

	// TotalScore is the 0-8 composite.
	TotalScore int `json:"total_score"`

	// Tier is the label derived from TotalScore.
	Tier Tier `json:"tier"`

	// Summary holds the aggregates the scores were derived from.
	Summary QualitySummary `json:"summary"`

	// SourceChecks holds per-document diagnostics in corpus order.
	SourceChecks []SourceCheck `json:"source_checks"`

	// Recommendations are ordered advisory strings produced by
	// threshold rules over the dimensions.
	Recommendations []string `json:"recommendations"`
}
