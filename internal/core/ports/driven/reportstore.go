package driven

import (
	"context"

	"github.com/edukit-labs/coursegen-cli/internal/core/domain"
)

// ReportStore persists generation projects and their report artifacts.
// Reports are stored as serialized JSON payloads keyed by kind; the
// core never interprets stored payloads beyond round-tripping them.
type ReportStore interface {
	// SaveProject creates or updates a project record.
	SaveProject(ctx context.Context, project *domain.Project) error

	// GetProject retrieves a project by ID.
	// Returns domain.ErrNotFound when absent.
	GetProject(ctx context.Context, id string) (*domain.Project, error)

	// ListProjects returns all projects ordered by creation time descending.
	ListProjects(ctx context.Context) ([]domain.Project, error)

	// DeleteProject removes a project and its reports.
	DeleteProject(ctx context.Context, id string) error

	// SaveReport stores one report payload for a project, replacing any
	// previous payload of the same kind.
	SaveReport(ctx context.Context, projectID string, kind domain.ReportKind, payload []byte) error

	// GetReport retrieves a stored report payload.
	// Returns domain.ErrNotFound when absent.
	GetReport(ctx context.Context, projectID string, kind domain.ReportKind) ([]byte, error)
}
