package domain

// Repository is one starred repository as returned by the listing endpoint.
// It is immutable once fetched; the pipeline never modifies repositories.
type Repository struct {
	// FullName is the "owner/name" identifier, unique and stable for the run.
	FullName string

	// Name is the short display name.
	Name string

	// Description is the free-text description. May be empty.
	Description string

	// Language is the primary language label. May be empty.
	Language string

	// Topics are the repository topic tags. Order is not significant.
	Topics []string

	// Stars is the stargazer count at fetch time.
	Stars int

	// URL is the canonical HTML URL.
	URL string
}

// FetchResult is the outcome of listing a user's starred repositories.
// Repos may be partial; Complete distinguishes a full listing from one that
// was cut short by an unrecoverable error or exhausted retries.
type FetchResult struct {
	Repos    []Repository
	Complete bool
}

// RepoNames returns the FullName of every repository, in order.
func RepoNames(repos []Repository) []string {
	names := make([]string, len(repos))
	for i, r := range repos {
		names[i] = r.FullName
	}
	return names
}
