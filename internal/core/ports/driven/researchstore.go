package driven

import (
	"context"

	"github.com/edukit-labs/coursegen-cli/internal/core/domain"
)

// ResearchStore loads the artifacts the external fetchers produced.
// The pipeline never fetches anything itself; by the time it runs,
// research material is already materialised wherever ref points.
type ResearchStore interface {
	// LoadWeb reads a web research artifact.
	// An empty ref means the web side was not requested; implementations
	// return (nil, nil) so the pipeline degrades gracefully.
	LoadWeb(ctx context.Context, ref string) (*domain.WebResearch, error)

	// LoadVideo reads a video transcript artifact.
	// Empty ref behaves as for LoadWeb.
	LoadVideo(ctx context.Context, ref string) (*domain.VideoResearch, error)
}
