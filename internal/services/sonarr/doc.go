// Package sonarr is a thin typed client for the library manager's v3 HTTP API.
//
// It exposes exactly the operations the cleanup pipeline needs: listing
// series, listing a series' episodes, unmonitoring an episode, and deleting
// an episode file. Episode records retain the raw upstream JSON so the
// unmonitor update sends the complete object back with only the monitored
// flag changed, leaving record ownership with the server.
package sonarr
