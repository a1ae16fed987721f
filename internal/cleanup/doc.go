// Package cleanup implements the retention run: select daily series from the
// library manager, find downloaded episodes older than the configured
// threshold, unmonitor and delete each one, then refresh the media server's
// show sections and prune empty directories under the media root.
//
// The Runner drives one run as a linear sequence. Failures below the
// configuration tier never abort a run: a series whose episode fetch fails
// contributes nothing, a failed episode leaves its siblings untouched, and a
// directory that cannot be removed is logged and skipped. The run always ends
// with a summary.
package cleanup
