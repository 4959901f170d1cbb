package domain

import "time"

// ReportKind names a persisted pipeline artifact.
type ReportKind string

const (
	// ReportQuality is a serialized QualityReport.
	ReportQuality ReportKind = "quality"

	// ReportTerminology is a serialized TerminologyReport.
	ReportTerminology ReportKind = "terminology"

	// ReportPrompt is a serialized PromptDocument.
	ReportPrompt ReportKind = "prompt"
)

// Project groups the persisted artifacts of one generation request.
type Project struct {
	// ID is the unique project identifier.
	ID string

	// Name is the human-readable project name.
	Name string

	// Course is the course the project was run for.
	Course string

	// CreatedAt is when the project was first saved.
	CreatedAt time.Time
}
