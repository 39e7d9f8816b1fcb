package domain

import "strings"

// Category is one entry in the merged taxonomy. Its Name and Description are
// fixed by whichever classification call first introduced it; later merges
// may only add members.
type Category struct {
	// Name is the canonical display name (as first proposed).
	Name string

	// Description is the category description (as first proposed).
	Description string

	// Repos are the members in merge order. A repository appears at most
	// once per category, but may appear in several different categories.
	Repos []Assignment

	members map[string]struct{}
}

// Has reports whether the repository is already a member of the category.
func (c *Category) Has(fullName string) bool {
	_, ok := c.members[fullName]
	return ok
}

// Taxonomy is the accumulated category set across all batches. It is owned
// by a single writer: the pipeline merges into it strictly in batch order,
// which is what makes first-writer-wins category identity deterministic.
type Taxonomy struct {
	categories []*Category
	index      map[string]*Category
}

// NewTaxonomy creates an empty taxonomy.
func NewTaxonomy() *Taxonomy {
	return &Taxonomy{
		index: make(map[string]*Category),
	}
}

// normalizeName computes the case-insensitive merge key for a category name.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Merge folds one batch's suggestions into the taxonomy.
//
// A suggestion whose normalized name is unknown becomes a new category,
// verbatim. A suggestion matching an existing category keeps that category's
// original name and description and contributes only members whose
// identifier is not already present in the category. Re-merging the same
// suggestions is a no-op.
func (t *Taxonomy) Merge(suggestions []CategorySuggestion) {
	for _, s := range suggestions {
		key := normalizeName(s.Name)
		if key == "" {
			continue
		}

		cat, ok := t.index[key]
		if !ok {
			cat = &Category{
				Name:        s.Name,
				Description: s.Description,
				members:     make(map[string]struct{}, len(s.Repos)),
			}
			t.index[key] = cat
			t.categories = append(t.categories, cat)
		}

		for _, a := range s.Repos {
			if a.FullName == "" {
				continue
			}
			if _, dup := cat.members[a.FullName]; dup {
				continue
			}
			cat.members[a.FullName] = struct{}{}
			cat.Repos = append(cat.Repos, a)
		}
	}
}

// Categories returns the categories in insertion order.
func (t *Taxonomy) Categories() []Category {
	out := make([]Category, len(t.categories))
	for i, c := range t.categories {
		out[i] = *c
	}
	return out
}

// Len returns the number of categories.
func (t *Taxonomy) Len() int {
	return len(t.categories)
}

// Summaries returns the name/description of every category, in insertion
// order. This is the context carried into the next classification call.
func (t *Taxonomy) Summaries() []CategorySummary {
	out := make([]CategorySummary, len(t.categories))
	for i, c := range t.categories {
		out[i] = CategorySummary{Name: c.Name, Description: c.Description}
	}
	return out
}

// Contains reports whether the repository is a member of any category.
func (t *Taxonomy) Contains(fullName string) bool {
	for _, c := range t.categories {
		if c.Has(fullName) {
			return true
		}
	}
	return false
}

// Uncategorized returns the repositories that appear in no category, in
// input order. This is the pure set difference between the input collection
// and the union of all category memberships.
func (t *Taxonomy) Uncategorized(repos []Repository) []Repository {
	categorized := make(map[string]struct{})
	for _, c := range t.categories {
		for name := range c.members {
			categorized[name] = struct{}{}
		}
	}

	var out []Repository
	for _, r := range repos {
		if _, ok := categorized[r.FullName]; !ok {
			out = append(out, r)
		}
	}
	return out
}
