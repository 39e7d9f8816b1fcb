// Package domain contains the core business types and logic for starcat.
//
// The domain is infrastructure-free: it knows nothing about GitHub, LLM
// providers, or output formats. Adapters translate their wire formats into
// these types at the boundary.
//
// The central types are:
//
//   - Repository: one starred repository, immutable once fetched
//   - CategorySuggestion: the categories one classification call proposed
//   - Taxonomy: the accumulated, deduplicated category set across batches
//   - RunSummary: the primary output of a pipeline run
//
// # Import Rules
//
//   - Can Import: standard library only
//   - Cannot Import: ports, services, adapters, connectors
package domain
