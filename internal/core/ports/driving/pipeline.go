package driving

import (
	"context"

	"github.com/edukit-labs/coursegen-cli/internal/core/domain"
)

// PipelineService runs the research quality and terminology pipeline.
// All operations are pure with respect to their inputs; the only side
// effect is optional report persistence during Generate.
type PipelineService interface {
	// AnalyzeQuality normalizes the referenced research material and
	// scores its evidentiary quality. Either ref may be empty.
	AnalyzeQuality(ctx context.Context, req AnalysisRequest) (*QualityResult, error)

	// AnalyzeTerminology normalizes the referenced research material
	// and extracts domain terminology. Either ref may be empty.
	AnalyzeTerminology(ctx context.Context, req AnalysisRequest) (*TerminologyResult, error)

	// Generate runs the full pipeline: normalize, analyze (quality and
	// terminology concurrently), then assemble the prompt document.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
}

// AnalysisRequest identifies the research material for one analysis.
type AnalysisRequest struct {
	// WebRef locates the web research artifact; empty skips the web side.
	WebRef string

	// VideoRef locates the transcript artifact; empty skips the video side.
	VideoRef string

	// Theme is the optional course theme passed to terminology extraction.
	Theme string
}

// QualityResult is the outcome of a quality analysis.
type QualityResult struct {
	// Report is the computed quality report.
	Report domain.QualityReport

	// Warnings lists records skipped during normalization.
	Warnings []string
}

// TerminologyResult is the outcome of a terminology analysis.
type TerminologyResult struct {
	// Report is the computed terminology report.
	Report domain.TerminologyReport

	// Warnings lists records skipped during normalization.
	Warnings []string
}

// GenerateRequest configures a full pipeline run.
type GenerateRequest struct {
	// AnalysisRequest supplies the research refs and theme.
	AnalysisRequest

	// OutlineRef locates the course plan.
	OutlineRef string

	// Units optionally restricts the outline to specific unit numbers.
	Units []int

	// Spec carries the instructional parameters.
	Spec domain.CourseSpec

	// SkipQuality omits the quality section from the document.
	SkipQuality bool

	// SkipTerminology omits the terminology section from the document.
	SkipTerminology bool

	// Unabridged disables all excerpt truncation.
	Unabridged bool

	// ProjectName, when non-empty, persists the run's artifacts under
	// a project with this name. Requires a configured report store.
	ProjectName string
}

// GenerateResult is the outcome of a full pipeline run.
type GenerateResult struct {
	// Prompt is the assembled document.
	Prompt domain.PromptDocument

	// Quality is present unless skipped or no research was supplied.
	Quality *domain.QualityReport

	// Terminology is present unless skipped or no research was supplied.
	Terminology *domain.TerminologyReport

	// Warnings lists records skipped during normalization.
	Warnings []string

	// ProjectID is set when the run was persisted.
	ProjectID string
}
