package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfig indicates invalid threshold, cap or taxonomy
	// configuration. Configuration errors are fatal at startup and
	// never silently ignored.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrCourseNotFound indicates the requested course is absent from
	// the outline source.
	ErrCourseNotFound = errors.New("course not found")

	// ErrUnitNotFound indicates the requested unit numbers are absent
	// from the course.
	ErrUnitNotFound = errors.New("unit not found")

	// ErrOutlineUnavailable indicates no outline store is configured.
	// Prompt assembly requires an outline; analyses do not.
	ErrOutlineUnavailable = errors.New("outline store unavailable")

	// ErrReportStoreUnavailable indicates persistence is not configured.
	// Reports can still be produced and printed, just not saved.
	ErrReportStoreUnavailable = errors.New("report store unavailable")
)
