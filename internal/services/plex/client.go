package plex

import "context"

// Section describes one Plex library section as reported by the server.
type Section struct {
	Key   string
	Title string
	Type  string
}

// Service exposes the subset of the Plex HTTP API the cleanup run needs:
// listing library sections and asking the server to rescan one.
type Service interface {
	Sections(ctx context.Context) ([]Section, error)
	RefreshSection(ctx context.Context, key string) error
}
