package driven

import (
	"context"

	"github.com/edukit-labs/coursegen-cli/internal/core/domain"
)

// OutlineStore loads course plans from tabular storage.
// Outline loading is a collaborator concern; the core only consumes
// the resulting structure.
type OutlineStore interface {
	// Load returns the outline for one course, optionally filtered to
	// specific unit numbers. Returns domain.ErrCourseNotFound when the
	// course is absent and domain.ErrUnitNotFound when none of the
	// requested units exist.
	Load(ctx context.Context, ref, course string, units []int) (*domain.CourseOutline, error)

	// Courses lists the course names available at ref.
	Courses(ctx context.Context, ref string) ([]string, error)
}
