// Package daemon provides watch mode: a long-running process that executes
// cleanup runs on a cron schedule. It owns the cross-process run lock, an
// optional Prometheus endpoint, and run-outcome notifications. One-shot runs
// reuse the same RunLock so they never race a scheduled run.
package daemon
