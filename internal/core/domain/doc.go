// Package domain defines the core business entities for Coursegen.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A normalised research document with provenance metadata
//   - Corpus: The full document set for one generation request
//   - QualityReport: Composite evidentiary quality score and tier
//   - Term / TerminologyReport: Extracted domain terminology
//   - CourseOutline / PromptDocument: Outline input and assembled output
//   - Taxonomy: Injected keyword/domain lookup configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
