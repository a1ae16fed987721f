// Package main hosts the Sweeparr CLI entrypoint and command graph.
//
// The Cobra-based command tree covers the one-shot cleanup run, the scheduled
// watch mode, and configuration scaffolding. It centralizes configuration
// loading, logging setup, and backend construction so subcommands stay thin;
// the cleanup semantics live in the internal packages.
package main
