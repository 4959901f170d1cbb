package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/edukit-labs/coursegen-cli/internal/core/domain"
	"github.com/edukit-labs/coursegen-cli/internal/core/ports/driven"
	"github.com/edukit-labs/coursegen-cli/internal/core/ports/driving"
)

// Pipeline orchestrates the full run: load research artifacts,
// normalize, analyze, load the outline and assemble the document.
// Persistence is optional and only engaged when a project name is set.
type Pipeline struct {
	research   driven.ResearchStore
	outlines   driven.OutlineStore
	reports    driven.ReportStore
	normalizer *Normalizer
	scorer     *QualityScorer
	extractor  *TerminologyExtractor
	assembler  *PromptAssembler
	now        func() time.Time
	newID      func() string
}

// PipelineOption configures the pipeline.
type PipelineOption func(*Pipeline)

// WithReportStore enables artifact persistence.
func WithReportStore(store driven.ReportStore) PipelineOption {
	return func(p *Pipeline) {
		p.reports = store
	}
}

// WithClock overrides the wall clock, for tests.
func WithClock(fn func() time.Time) PipelineOption {
	return func(p *Pipeline) {
		p.now = fn
	}
}

// WithProjectIDGenerator overrides project ID generation, for tests.
func WithProjectIDGenerator(fn func() string) PipelineOption {
	return func(p *Pipeline) {
		p.newID = fn
	}
}

// NewPipeline wires the pipeline from its collaborators. All of them
// except the report store are required.
func NewPipeline(
	research driven.ResearchStore,
	outlines driven.OutlineStore,
	normalizer *Normalizer,
	scorer *QualityScorer,
	extractor *TerminologyExtractor,
	assembler *PromptAssembler,
	opts ...PipelineOption,
) (*Pipeline, error) {
	if research == nil || outlines == nil || normalizer == nil || scorer == nil || extractor == nil || assembler == nil {
		return nil, fmt.Errorf("pipeline: %w: missing collaborator", domain.ErrInvalidConfig)
	}

	p := &Pipeline{
		research:   research,
		outlines:   outlines,
		normalizer: normalizer,
		scorer:     scorer,
		extractor:  extractor,
		assembler:  assembler,
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

var _ driving.PipelineService = (*Pipeline)(nil)

// AnalyzeQuality normalizes the referenced research and scores it.
func (p *Pipeline) AnalyzeQuality(ctx context.Context, req driving.AnalysisRequest) (*driving.QualityResult, error) {
	normalized, err := p.loadAndNormalize(ctx, req)
	if err != nil {
		return nil, err
	}
	return &driving.QualityResult{
		Report:   p.scorer.Score(normalized.Corpus),
		Warnings: normalized.Warnings,
	}, nil
}

// AnalyzeTerminology normalizes the referenced research and extracts
// its recurring vocabulary.
func (p *Pipeline) AnalyzeTerminology(ctx context.Context, req driving.AnalysisRequest) (*driving.TerminologyResult, error) {
	normalized, err := p.loadAndNormalize(ctx, req)
	if err != nil {
		return nil, err
	}
	return &driving.TerminologyResult{
		Report:   p.extractor.Extract(normalized.Corpus, req.Theme),
		Warnings: normalized.Warnings,
	}, nil
}

// Generate runs the full pipeline. Quality scoring and terminology
// extraction run concurrently; both are pure over the corpus.
func (p *Pipeline) Generate(ctx context.Context, req driving.GenerateRequest) (*driving.GenerateResult, error) {
	if req.ProjectName != "" && p.reports == nil {
		return nil, fmt.Errorf("pipeline: project %q: %w", req.ProjectName, domain.ErrReportStoreUnavailable)
	}

	outline, err := p.outlines.Load(ctx, req.OutlineRef, req.Spec.Course, req.Units)
	if err != nil {
		return nil, fmt.Errorf("pipeline: load outline: %w", err)
	}

	normalized, err := p.loadAndNormalize(ctx, req.AnalysisRequest)
	if err != nil {
		return nil, err
	}

	var (
		quality     *domain.QualityReport
		terminology *domain.TerminologyReport
	)
	if !normalized.Corpus.IsEmpty() {
		g, _ := errgroup.WithContext(ctx)
		if !req.SkipQuality {
			g.Go(func() error {
				report := p.scorer.Score(normalized.Corpus)
				quality = &report
				return nil
			})
		}
		if !req.SkipTerminology {
			g.Go(func() error {
				report := p.extractor.Extract(normalized.Corpus, req.Theme)
				terminology = &report
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("pipeline: analyze: %w", err)
		}
	}

	prompt := p.assembler.Assemble(AssembleInput{
		Outline:     *outline,
		Spec:        req.Spec,
		Corpus:      normalized.Corpus,
		Quality:     quality,
		Terminology: terminology,
		Unabridged:  req.Unabridged,
	})

	result := &driving.GenerateResult{
		Prompt:      prompt,
		Quality:     quality,
		Terminology: terminology,
		Warnings:    normalized.Warnings,
	}

	if req.ProjectName != "" {
		projectID, err := p.persist(ctx, req, result)
		if err != nil {
			return nil, err
		}
		result.ProjectID = projectID
	}
	return result, nil
}

// loadAndNormalize reads both research artifacts and builds the corpus.
// Either ref may be empty; missing sides simply contribute nothing.
func (p *Pipeline) loadAndNormalize(ctx context.Context, req driving.AnalysisRequest) (NormalizeResult, error) {
	web, err := p.research.LoadWeb(ctx, req.WebRef)
	if err != nil {
		return NormalizeResult{}, fmt.Errorf("pipeline: load web research: %w", err)
	}
	video, err := p.research.LoadVideo(ctx, req.VideoRef)
	if err != nil {
		return NormalizeResult{}, fmt.Errorf("pipeline: load video research: %w", err)
	}
	return p.normalizer.Normalize(web, video), nil
}

// persist stores the run's artifacts as a new project. Reports are
// serialized to JSON; a failed save aborts the whole persistence step
// so stored projects are always complete.
func (p *Pipeline) persist(ctx context.Context, req driving.GenerateRequest, result *driving.GenerateResult) (string, error) {
	project := &domain.Project{
		ID:        p.newID(),
		Name:      req.ProjectName,
		Course:    req.Spec.Course,
		CreatedAt: p.now().UTC(),
	}
	if err := p.reports.SaveProject(ctx, project); err != nil {
		return "", fmt.Errorf("pipeline: save project: %w", err)
	}

	type artifact struct {
		kind    domain.ReportKind
		payload any
	}
	artifacts := []artifact{{domain.ReportPrompt, result.Prompt}}
	if result.Quality != nil {
		artifacts = append(artifacts, artifact{domain.ReportQuality, result.Quality})
	}
	if result.Terminology != nil {
		artifacts = append(artifacts, artifact{domain.ReportTerminology, result.Terminology})
	}

	for _, artifact := range artifacts {
		payload, err := json.Marshal(artifact.payload)
		if err != nil {
			return "", fmt.Errorf("pipeline: encode %s report: %w", artifact.kind, err)
		}
		if err := p.reports.SaveReport(ctx, project.ID, artifact.kind, payload); err != nil {
			return "", fmt.Errorf("pipeline: save %s report: %w", artifact.kind, err)
		}
	}
	return project.ID, nil
}
