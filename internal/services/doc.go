// Package services defines shared utilities consumed by the cleanup pipeline
// and the external backend integrations.
//
// Key responsibilities:
//   - Context helpers that stamp run, series, and episode identifiers for
//     logging and tracing.
//   - Structured error markers plus the Wrap helper that keep failure
//     classification consistent across backends.
//
// Use these helpers when wiring new backend logic so operational behaviour
// (error handling, observability) stays uniform across the pipeline.
package services
