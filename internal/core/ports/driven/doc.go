// Package driven defines the interfaces the core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for a run to execute:
//
//   - StarLister: fetches the starred-repository collection
//   - Classifier: submits one batch to the classification service
//
// # Optional Interfaces
//
// These can be nil - the pipeline degrades gracefully:
//
//   - ReportStore: persists run artifacts. Without it, results are
//     in-memory only.
//   - PromptStore: customisable prompt templates. Without it, adapters use
//     embedded defaults.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: any adapter or connector package
package driven
