package domain

// Origin identifies the kind of research source a document came from.
type Origin string

const (
	// OriginWeb marks documents produced by the web research fetcher.
	OriginWeb Origin = "web"

	// OriginVideo marks documents produced by the video transcript fetcher.
	OriginVideo Origin = "video"
)

// Credibility is the trust level inferred from a document's origin domain.
type Credibility string

const (
	// CredibilityHigh covers government, academic and encyclopedic domains.
	CredibilityHigh Credibility = "high"

	// CredibilityMedium covers established press and reference sites.
	CredibilityMedium Credibility = "medium"

	// CredibilityLow is everything else with a resolvable URL.
	CredibilityLow Credibility = "low"

	// CredibilityUnknown means no URL was available to judge.
	CredibilityUnknown Credibility = "unknown"
)

// Document represents one unit of normalised research material.
// It is the canonical representation after corpus normalisation and
// is immutable thereafter.
type Document struct {
	// SourceID is the unique identifier assigned during normalisation.
	SourceID string

	// Origin records which fetcher produced the raw material.
	Origin Origin

	// URL is the original location of the material.
	URL string

	// Title is the human-readable title. Video documents fall back
	// to the video ID when no title is available.
	Title string

	// Text is the full normalised text content.
	Text string

	// WordCount is the reported or derived word count. Web sources
	// report characters; both feed the content-volume dimension.
	WordCount int

	// CredibilityHint is derived from the origin domain via the taxonomy.
	CredibilityHint Credibility

	// NumericMentions counts recognisable numeric/statistical tokens
	// in Text. The data-point quality dimension aggregates this.
	NumericMentions int

	// NumericDataPresent is true when NumericMentions > 0.
	NumericDataPresent bool

	// Language is the reported transcript language, when known.
	Language string

	// DurationSeconds is the source video length, zero for web documents.
	DurationSeconds float64
}

// Corpus is the ordered set of normalised documents for one
// generation request. Documents are read-only once the corpus
// is built; analyses never mutate it.
type Corpus struct {
	// Documents holds all web documents first (in input order),
	// then all video documents.
	Documents []Document
}

// IsEmpty reports whether the corpus holds no documents.
func (c Corpus) IsEmpty() bool {
	return len(c.Documents) == 0
}

// ByOrigin returns the documents from the given origin, preserving
// corpus order.
func (c Corpus) ByOrigin(origin Origin) []Document {
	var docs []Document
	for _, d := range c.Documents {
		if d.Origin == origin {
			docs = append(docs, d)
		}
	}
	return docs
}

// CountByOrigin returns how many documents came from the given origin.
func (c Corpus) CountByOrigin(origin Origin) int {
	n := 0
	for _, d := range c.Documents {
		if d.Origin == origin {
			n++
		}
	}
	return n
}

// TotalWords sums the word counts of every document.
func (c Corpus) TotalWords() int {
	total := 0
	for _, d := range c.Documents {
		total += d.WordCount
	}
	return total
}

// TotalNumericMentions sums numeric mentions across the corpus.
// The quality scorer rewards density, not mere presence, so this
// is an aggregate count rather than a document count.
func (c Corpus) TotalNumericMentions() int {
	total := 0
	for _, d := range c.Documents {
		total += d.NumericMentions
	}
	return total
}

// CredibleCount returns the number of documents whose credibility
// hint is at least the given level (high subsumes medium).
func (c Corpus) CredibleCount(minimum Credibility) int {
	n := 0
	for _, d := range c.Documents {
		switch minimum {
		case CredibilityHigh:
			if d.CredibilityHint == CredibilityHigh {
				n++
			}
		case CredibilityMedium:
			if d.CredibilityHint == CredibilityHigh || d.CredibilityHint == CredibilityMedium {
				n++
			}
		}
	}
	return n
}
