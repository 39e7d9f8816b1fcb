package driven

// PromptStore provides access to LLM prompt templates.
// Implementations may load prompts from files, embed them in the binary,
// or fetch them from a remote configuration service.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	// Returns the prompt content and any error encountered.
	// If the prompt is not found, implementations should return a sensible
	// default or an error, depending on whether the prompt is required.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	// This is useful when prompts may have been edited on disk.
	Reload()
}

// Well-known prompt names used throughout the application.
// These constants define the contract between prompt consumers and providers.
const (
	// PromptClassify is the instruction block for a classification call.
	// The template expects a %s placeholder for the batch's repository
	// listing. It must ask for the JSON shape the classifier parses.
	PromptClassify = "classify"

	// PromptClassifyContext is prepended for non-first batches. The
	// template expects a %s placeholder for the existing category listing.
	PromptClassifyContext = "classify_context"
)

// PromptStoreAware is an optional interface for adapters that can use custom
// prompts. Adapters implementing it can have their templates customised by
// injecting a PromptStore after construction.
type PromptStoreAware interface {
	// SetPromptStore sets the prompt store for loading customisable
	// prompts. If not set, the adapter uses hardcoded default prompts.
	SetPromptStore(store PromptStore)
}
