package domain

// TermCategory classifies a term by subject area.
type TermCategory string

const (
	// CategoryTechnical covers technology vocabulary.
	CategoryTechnical TermCategory = "technical"

	// CategoryBusiness covers commercial vocabulary.
	CategoryBusiness TermCategory = "business"

	// CategoryLearning covers pedagogy vocabulary.
	CategoryLearning TermCategory = "learning"

	// CategoryGeneral is the default when no table matches.
	CategoryGeneral TermCategory = "general"
)

// LearningPhase is the pedagogical bucket a term is associated with.
type LearningPhase string

const (
	// PhaseIntroduction covers basic concepts, definitions, background.
	PhaseIntroduction LearningPhase = "introduction"

	// PhaseUnderstanding covers mechanisms, principles, detail.
	PhaseUnderstanding LearningPhase = "understanding"

	// PhaseApplication covers usage, practice, case studies.
	PhaseApplication LearningPhase = "application"

	// PhaseNone means no phase cue matched. Such terms stay in the
	// term list but are excluded from phase-count denominators.
	PhaseNone LearningPhase = "none"
)

// Term is one extracted vocabulary item.
//
// Invariant: every surviving term has Frequency >= 2 and a surface
// form of at least 2 runes. Category and phase are deterministic
// functions of the surface form and the injected taxonomy.
type Term struct {
	// Surface is the term as it appears in the corpus.
	Surface string `json:"term"`

	// Frequency is the occurrence count across all documents.
	Frequency int `json:"frequency"`

	// Category is the subject-area classification.
	Category TermCategory `json:"category"`

	// Phase is the learning-phase mapping, PhaseNone when unmatched.
	Phase LearningPhase `json:"learning_phase"`
}

// TerminologyReport is the terminology extractor's output.
type TerminologyReport struct {
	// CourseTheme echoes the optional theme the extraction ran with.
	CourseTheme string `json:"course_theme,omitempty"`

	// TotalUniqueTerms counts all candidates that survived filtering,
	// before the surfaced-terms truncation.
	TotalUniqueTerms int `json:"total_unique_terms"`

	// TopTerms is ordered by descending frequency, ties broken by
	// first-occurrence order, truncated to the surfaced cap.
	TopTerms []Term `json:"top_terms"`

	// CategoryCounts tallies TopTerms by category.
	CategoryCounts map[TermCategory]int `json:"category_counts"`

	// PhaseCounts tallies TopTerms by phase. PhaseNone is omitted.
	PhaseCounts map[LearningPhase]int `json:"phase_counts"`

	// Recommendations fire on distributional imbalance.
	Recommendations []string `json:"recommendations"`
}
