// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - SheetNormaliser: Parses one markup dialect into canonical nodes
//   - NormaliserRegistry: Selects the normaliser for a dialect
//   - SongStore: Song persistence
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - PostProcessorPipeline: Rewrites nodes after normalisation. Without it,
//     normalised sheets are stored as-is.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
