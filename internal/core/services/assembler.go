package services

import (
	"fmt"
	"strings"

	"github.com/edukit-labs/coursegen-cli/internal/core/domain"
	"github.com/edukit-labs/coursegen-cli/internal/core/ports/driven"
)

// Excerpt bounds for the research section. Previews keep the document
// inside the model budget; the unabridged toggle lifts them all at once.
const (
	// DefaultMaxWebExcerpts is how many web documents are excerpted.
	DefaultMaxWebExcerpts = 5

	// DefaultMaxVideoExcerpts is how many transcripts are excerpted.
	DefaultMaxVideoExcerpts = 3

	// DefaultWebPreviewRunes bounds each web excerpt.
	DefaultWebPreviewRunes = 500

	// DefaultVideoPreviewRunes bounds each transcript excerpt.
	DefaultVideoPreviewRunes = 800
)

// defaultSystemTemplate frames the request for the downstream model.
// Placeholders: course, learner profile, target behavior, duration, tone.
const defaultSystemTemplate = `You are an expert combining the roles of instructional designer, visual designer and narrator for e-learning courses.
Produce the course content package in the two parts specified below.

# Course Specification
- **Course theme**: %s
- **Learner profile**: %s
- **Target behavior**: %s
- **Estimated duration**: %s
- **Tone and manner**: %s`

// defaultTaskTemplate holds the slide-design and narration instructions
// appended after all data sections. No placeholders.
const defaultTaskTemplate = `# Your Task
Generate both parts below, in order.

---
## Part 1: Visual Slide Blueprints

For every slide in the course structure, write a visual blueprint in Markdown:

### Unit [unit number]: [unit name]

**Slide [slide number]: [slide title]**
- **Layout**: describe the overall slide composition.
- **Key visual**: specify the central graphic element concretely.
- **On-slide text**: the exact text shown on the slide; beyond the title, keep it to 3-5 short bullet points or keywords.
- **Suggested colors**: propose 2-3 base colors for the slide.

---
## Part 2: Timestamped Narration and Subtitle Script

Produce the narration and subtitles as a Markdown table.

### Script rules
1. **Timing**: assume a narration pace of 150 words per minute (2.5 words per second) and compute start and end times per block from the word count.
2. **Subtitle splitting**: split the full narration into blocks that read naturally; subtitles must fit in 2 lines.
3. **Timestamp format**: MM:SS (for example 00:08, 02:15).

### Output format (Markdown table)

| Slide | Start | End | Subtitle (max 2 lines) | Full narration (spoken style) |
|---|---|---|---|---|`

// AssembleInput carries everything one prompt document is built from.
// Quality and Terminology are optional; a nil report omits its section.
type AssembleInput struct {
	// Outline is the course structure the document is generated for.
	Outline domain.CourseOutline

	// Spec holds the instructional parameters.
	Spec domain.CourseSpec

	// Corpus is the normalized research material, possibly empty.
	Corpus domain.Corpus

	// Quality is the optional quality report.
	Quality *domain.QualityReport

	// Terminology is the optional terminology report.
	Terminology *domain.TerminologyReport

	// Unabridged disables all excerpt truncation and count caps.
	Unabridged bool
}

// PromptAssembler composes the final generation document from the
// outline, the research corpus and the analysis reports. Pure string
// assembly; no I/O beyond the optional template store.
type PromptAssembler struct {
	prompts          driven.PromptStore
	maxWebExcerpts   int
	maxVideoExcerpts int
	webPreviewRunes  int
	videoPreview     int
	ceiling          int
}

// AssemblerOption configures the prompt assembler.
type AssemblerOption func(*PromptAssembler)

// WithExcerptBounds overrides the excerpt counts and preview lengths.
func WithExcerptBounds(webDocs, videoDocs, webRunes, videoRunes int) AssemblerOption {
	return func(a *PromptAssembler) {
		a.maxWebExcerpts = webDocs
		a.maxVideoExcerpts = videoDocs
		a.webPreviewRunes = webRunes
		a.videoPreview = videoRunes
	}
}

// WithTokenCeiling overrides the token budget the estimate is
// classified against.
func WithTokenCeiling(n int) AssemblerOption {
	return func(a *PromptAssembler) {
		a.ceiling = n
	}
}

// NewPromptAssembler creates an assembler with embedded default
// templates. Inject a PromptStore via SetPromptStore to customize them.
func NewPromptAssembler(opts ...AssemblerOption) (*PromptAssembler, error) {
	a := &PromptAssembler{
		maxWebExcerpts:   DefaultMaxWebExcerpts,
		maxVideoExcerpts: DefaultMaxVideoExcerpts,
		webPreviewRunes:  DefaultWebPreviewRunes,
		videoPreview:     DefaultVideoPreviewRunes,
		ceiling:          domain.TokenCeiling,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.maxWebExcerpts <= 0 || a.maxVideoExcerpts <= 0 || a.webPreviewRunes <= 0 || a.videoPreview <= 0 {
		return nil, fmt.Errorf("prompt assembler: %w: excerpt bounds must be positive", domain.ErrInvalidConfig)
	}
	if a.ceiling <= 0 {
		return nil, fmt.Errorf("prompt assembler: %w: token ceiling must be positive", domain.ErrInvalidConfig)
	}
	return a, nil
}

var _ driven.PromptStoreAware = (*PromptAssembler)(nil)

// SetPromptStore sets the store for loading customizable templates.
func (a *PromptAssembler) SetPromptStore(store driven.PromptStore) {
	a.prompts = store
}

// Assemble builds the complete prompt document. Always succeeds for
// valid input; an over-budget estimate is reported, not rejected.
func (a *PromptAssembler) Assemble(in AssembleInput) domain.PromptDocument {
	var b strings.Builder

	b.WriteString(fmt.Sprintf(a.template(driven.PromptCourseSystem, defaultSystemTemplate),
		in.Spec.Course, in.Spec.LearnerProfile, in.Spec.TargetBehavior, in.Spec.Duration, in.Spec.Tone))
	b.WriteString("\n\n# Course Structure (follow this exactly)\n---\n")
	b.WriteString(a.outlineSection(in.Outline))
	b.WriteString("\n---\n\n")

	if research := a.researchSection(in); research != "" {
		b.WriteString(research)
		b.WriteString("---\n\n")
	}

	b.WriteString(a.template(driven.PromptCourseTask, defaultTaskTemplate))
	b.WriteString("\n")

	text := b.String()
	estimated := domain.EstimateTokens(text)
	return domain.PromptDocument{
		Text:            text,
		EstimatedTokens: estimated,
		UsageLevel:      domain.ClassifyUsage(estimated, a.ceiling),
	}
}

// template resolves a named template from the store, falling back to
// the embedded default when no store is set or the load fails.
func (a *PromptAssembler) template(name, fallback string) string {
	if a.prompts == nil {
		return fallback
	}
	text, err := a.prompts.Load(name)
	if err != nil || strings.TrimSpace(text) == "" {
		return fallback
	}
	return text
}

func (a *PromptAssembler) outlineSection(outline domain.CourseOutline) string {
	if len(outline.Units) == 0 {
		return fmt.Sprintf("## Course: %s\n\n(no slides found for this course)", outline.Course)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Course: %s\n", outline.Course)
	for _, unit := range outline.Units {
		fmt.Fprintf(&b, "\n### Unit %d: %s\n", unit.Number, unit.Name)
		for _, slide := range unit.Slides {
			fmt.Fprintf(&b, "- Slide %d: %s\n", slide.Number, slide.Title)
		}
	}
	return b.String()
}

// researchSection renders the research data block: web and video
// excerpts plus the analysis sections. Empty when there is nothing to
// show, so outline-only documents carry no dangling headers.
func (a *PromptAssembler) researchSection(in AssembleInput) string {
	web := a.documentExcerpts(in.Corpus.ByOrigin(domain.OriginWeb), "Web Research Data", "Source", a.maxWebExcerpts, a.webPreviewRunes, in.Unabridged)
	video := a.documentExcerpts(in.Corpus.ByOrigin(domain.OriginVideo), "Video Transcript Data", "Video", a.maxVideoExcerpts, a.videoPreview, in.Unabridged)
	analysis := a.analysisSection(in.Quality, in.Terminology)

	if web == "" && video == "" && analysis == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString("# Research Data (reference material for course creation)\n")
	b.WriteString("Use the research below to keep the content accurate, current and practical.\n\n")
	for _, section := range []string{web, video, analysis} {
		if section != "" {
			b.WriteString(section)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (a *PromptAssembler) documentExcerpts(docs []domain.Document, header, label string, maxDocs, previewRunes int, unabridged bool) string {
	if len(docs) == 0 {
		return ""
	}

	shown := docs
	if !unabridged && len(shown) > maxDocs {
		shown = shown[:maxDocs]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n", header)
	fmt.Fprintf(&b, "- Sources: %d\n", len(docs))
	fmt.Fprintf(&b, "- Total words: %d\n\n", sumWords(docs))

	for i, doc := range shown {
		fmt.Fprintf(&b, "**%s %d: %s**\n", label, i+1, doc.Title)
		if doc.URL != "" {
			fmt.Fprintf(&b, "- URL: %s\n", doc.URL)
		}
		fmt.Fprintf(&b, "- Word count: %d\n", doc.WordCount)
		if doc.Language != "" {
			fmt.Fprintf(&b, "- Language: %s\n", doc.Language)
		}
		if doc.DurationSeconds > 0 {
			fmt.Fprintf(&b, "- Duration: %.1f min\n", float64(doc.DurationSeconds)/60)
		}
		if doc.Text != "" {
			preview := doc.Text
			if !unabridged {
				preview = truncateRunes(preview, previewRunes)
			}
			fmt.Fprintf(&b, "- Excerpt: %s\n", preview)
		}
		b.WriteString("\n")
	}

	if omitted := len(docs) - len(shown); omitted > 0 {
		fmt.Fprintf(&b, "(%d more omitted)\n\n", omitted)
	}
	return b.String()
}

func (a *PromptAssembler) analysisSection(quality *domain.QualityReport, terminology *domain.TerminologyReport) string {
	if quality == nil && terminology == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("### Quality Assurance Data (guidance for course creation)\n")
	b.WriteString("Consult the analysis below to keep the content accurate and pedagogically sound.\n\n")

	if quality != nil {
		fmt.Fprintf(&b, "**Quality assessment**: %s\n", quality.Tier)
		fmt.Fprintf(&b, "- Data points: %d\n", quality.Summary.TotalDataPoints)
		fmt.Fprintf(&b, "- Credible sources: %d\n", quality.Summary.CredibleSources)
		if recs := capStrings(quality.Recommendations, 3); len(recs) > 0 {
			b.WriteString("\n**Quality notes**:\n")
			for _, rec := range recs {
				fmt.Fprintf(&b, "- %s\n", rec)
			}
		}
	}

	if terminology != nil {
		b.WriteString("\n**Key terminology analysis**:\n")
		fmt.Fprintf(&b, "- Recurring terms detected: %d\n", terminology.TotalUniqueTerms)
		if line := countLine(terminology.CategoryCounts, domain.CategoryTechnical, domain.CategoryBusiness, domain.CategoryLearning, domain.CategoryGeneral); line != "" {
			fmt.Fprintf(&b, "- Category distribution: %s\n", line)
		}
		if line := countLine(terminology.PhaseCounts, domain.PhaseIntroduction, domain.PhaseUnderstanding, domain.PhaseApplication); line != "" {
			fmt.Fprintf(&b, "- Learning phase distribution: %s\n", line)
		}

		top := terminology.TopTerms
		if len(top) > 10 {
			top = top[:10]
		}
		if len(top) > 0 {
			names := make([]string, 0, len(top))
			for _, t := range top {
				names = append(names, t.Surface)
			}
			b.WriteString("\n**Top 10 terms that must be explained**:\n")
			fmt.Fprintf(&b, "%s\n", strings.Join(names, ", "))
			b.WriteString("\nDefine each of these terms clearly within the course.\n")
		}

		if recs := capStrings(terminology.Recommendations, 2); len(recs) > 0 {
			b.WriteString("\n**Terminology recommendations**:\n")
			for _, rec := range recs {
				fmt.Fprintf(&b, "- %s\n", rec)
			}
		}
	}

	b.WriteString("\n")
	return b.String()
}

// countLine renders a count map in a fixed key order so output is
// deterministic. Absent keys are skipped.
func countLine[K ~string](counts map[K]int, order ...K) string {
	var parts []string
	for _, key := range order {
		if n, ok := counts[key]; ok && n > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", key, n))
		}
	}
	return strings.Join(parts, ", ")
}

func capStrings(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}

// truncateRunes clips text at a rune boundary, appending an ellipsis
// marker when anything was cut.
func truncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

func sumWords(docs []domain.Document) int {
	n := 0
	for _, doc := range docs {
		n += doc.WordCount
	}
	return n
}
