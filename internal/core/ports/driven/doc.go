// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - OutlineStore: Course plan loading (prompt assembly needs an outline)
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the pipeline degrades gracefully:
//
//   - ResearchStore: Fetcher artifact loading. Either research side may
//     be absent; the corresponding analyses degrade to empty reports.
//   - ReportStore: Project/report persistence. Without it, results are
//     printed but not saved.
//   - PromptStore: Task-instruction templates. Without it, embedded
//     defaults are used.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
