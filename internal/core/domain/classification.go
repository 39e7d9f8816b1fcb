package domain

// Assignment places one repository in a category, with the model's rationale.
type Assignment struct {
	// FullName is the repository identifier.
	FullName string

	// Reason is the model's rationale for the placement. May be empty.
	Reason string
}

// CategorySuggestion is one category as proposed by a single classification
// call. Suggestions are partial: they cover one batch and may repeat
// categories already known from earlier batches.
type CategorySuggestion struct {
	// Name is the proposed category name. Matching against existing
	// categories is case-insensitive.
	Name string

	// Description is the human-readable category description.
	Description string

	// Repos are the proposed members, in the order the model listed them.
	Repos []Assignment
}

// CategorySummary is the name/description context carried forward to the
// next classification call so the model can reuse existing categories.
type CategorySummary struct {
	Name        string
	Description string
}

// ClassificationResult is the outcome of classifying one batch. Prompt and
// RawResponse are surfaced so the report sink can persist the exchange;
// Suggestions is empty when the call failed or the response was unparseable.
type ClassificationResult struct {
	Suggestions []CategorySuggestion
	Prompt      string
	RawResponse string
}
