package services

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/edukit-labs/coursegen-cli/internal/core/domain"
)

// numberPattern recognises numeric/statistical tokens: digit sequences
// with optional thousands separators and decimals, optionally prefixed
// by a currency symbol or suffixed by a percent sign or a unit word.
var numberPattern = regexp.MustCompile(`[$¥€£]?[0-9]+(?:,[0-9]{3})*(?:\.[0-9]+)?(?:%|％|円|ドル|件|人|年|倍|分|時間|kg|km|GB|TB)?`)

// NormalizeResult is the normalizer's output: the corpus plus warnings
// for any records that were skipped.
type NormalizeResult struct {
	// Corpus is the ordered normalised document sequence.
	Corpus domain.Corpus

	// Warnings describes skipped malformed records. A warning never
	// aborts normalization; remaining valid records are kept.
	Warnings []string
}

// Normalizer merges heterogeneous source records into a uniform
// in-memory corpus. It is a pure transform: no I/O, no mutation of
// its inputs.
type Normalizer struct {
	taxonomy domain.Taxonomy
	newID    func() string
}

// NormalizerOption configures the normalizer.
type NormalizerOption func(*Normalizer)

// WithIDGenerator replaces the document ID generator.
// Tests use this for deterministic source IDs.
func WithIDGenerator(fn func() string) NormalizerOption {
	return func(n *Normalizer) {
		if fn != nil {
			n.newID = fn
		}
	}
}

// NewNormalizer creates a corpus normalizer with the given taxonomy.
// Taxonomy validation failures are fatal configuration errors.
func NewNormalizer(taxonomy domain.Taxonomy, opts ...NormalizerOption) (*Normalizer, error) {
	if err := taxonomy.Validate(); err != nil {
		return nil, fmt.Errorf("normalizer: %w", err)
	}

	n := &Normalizer{
		taxonomy: taxonomy,
		newID: func() string {
			return uuid.New().String()
		},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// Normalize produces the document sequence for one generation request.
// Either input may be nil; an invocation with only web or only video
// material is valid and simply contributes nothing from the other side.
// Web documents come first in input order, then video documents.
func (n *Normalizer) Normalize(web *domain.WebResearch, video *domain.VideoResearch) NormalizeResult {
	var result NormalizeResult

	if web != nil {
		for i, src := range web.Sources {
			doc, ok := n.normalizeWebSource(src)
			if !ok {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("web source %d skipped: missing URL or content", i+1))
				continue
			}
			result.Corpus.Documents = append(result.Corpus.Documents, doc)
		}
	}

	if video != nil {
		for i, tr := range video.Transcriptions {
			doc, ok := n.normalizeTranscript(tr)
			if !ok {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("video transcript %d skipped: missing video ID or text", i+1))
				continue
			}
			result.Corpus.Documents = append(result.Corpus.Documents, doc)
		}
	}

	return result
}

func (n *Normalizer) normalizeWebSource(src domain.WebSource) (domain.Document, bool) {
	if src.URL == "" {
		return domain.Document{}, false
	}
	if src.Content == "" && src.CharacterCount == 0 {
		return domain.Document{}, false
	}

	count := src.CharacterCount
	if count == 0 {
		count = utf8.RuneCountInString(src.Content)
	}

	mentions := len(numberPattern.FindAllString(src.Content, -1))

	return domain.Document{
		SourceID:           n.newID(),
		Origin:             domain.OriginWeb,
		URL:                src.URL,
		Title:              src.Title,
		Text:               src.Content,
		WordCount:          count,
		CredibilityHint:    n.taxonomy.Credibility(src.URL),
		NumericMentions:    mentions,
		NumericDataPresent: mentions > 0,
	}, true
}

func (n *Normalizer) normalizeTranscript(tr domain.VideoTranscript) (domain.Document, bool) {
	if tr.VideoID == "" {
		return domain.Document{}, false
	}
	if tr.Text == "" && tr.WordCount == 0 {
		return domain.Document{}, false
	}

	count := tr.WordCount
	if count == 0 {
		count = utf8.RuneCountInString(tr.Text)
	}

	// Transcripts rarely carry a title; the video ID stands in.
	title := tr.VideoID

	mentions := len(numberPattern.FindAllString(tr.Text, -1))

	return domain.Document{
		SourceID:           n.newID(),
		Origin:             domain.OriginVideo,
		URL:                tr.SourceURL,
		Title:              title,
		Text:               tr.Text,
		WordCount:          count,
		CredibilityHint:    n.taxonomy.Credibility(tr.SourceURL),
		NumericMentions:    mentions,
		NumericDataPresent: mentions > 0,
		Language:           tr.Language,
		DurationSeconds:    tr.TotalDuration,
	}, true
}
