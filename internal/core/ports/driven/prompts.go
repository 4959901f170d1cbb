package driven

// PromptStore provides access to the task-instruction templates the
// assembler appends to generated documents. Implementations may load
// templates from files, embed them in the binary, or watch a directory
// for edits.
type PromptStore interface {
	// Load returns the template for the given name.
	// If the template is not found, implementations should return a
	// sensible default or an error, depending on whether it is required.
	Load(name string) (string, error)

	// Reload clears any cached templates, forcing fresh loads on next
	// access. Useful when templates may have been edited on disk.
	Reload()
}

// Well-known template names used throughout the application.
// These constants define the contract between template consumers and providers.
const (
	// PromptCourseSystem frames the generation request: the roles the
	// downstream model assumes and the overall deliverable. The template
	// expects placeholders for course name, learner profile, target
	// behavior, duration and tone, in that order.
	PromptCourseSystem = "course_system"

	// PromptCourseTask holds the slide-design and narration-script
	// instructions appended after all data sections. No placeholders.
	PromptCourseTask = "course_task"
)

// PromptStoreAware is an optional interface for services that can use
// custom templates. Services implementing it can have their templates
// customised by injecting a PromptStore after construction.
type PromptStoreAware interface {
	// SetPromptStore sets the store for loading customisable templates.
	// If not set, the service should use embedded default templates.
	SetPromptStore(store PromptStore)
}
