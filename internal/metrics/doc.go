// Package metrics exposes Prometheus counters for watch mode. The collector
// carries its own registry so the daemon's endpoint only serves sweeparr
// metrics, and every record method tolerates a nil collector so one-shot
// runs don't construct one.
package metrics
