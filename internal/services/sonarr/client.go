package sonarr

import (
	"context"
	"encoding/json"
)

// Series is the subset of a library manager series record the cleanup needs.
type Series struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	SeriesType string `json:"seriesType"`
}

// Episode is the subset of an episode record the cleanup needs. Raw retains
// the full upstream JSON object so monitoring updates can round-trip every
// field the server sent, not just the ones modeled here.
type Episode struct {
	ID            int64  `json:"id"`
	SeriesID      int64  `json:"seriesId"`
	Title         string `json:"title"`
	AirDateUTC    string `json:"airDateUtc"`
	HasFile       bool   `json:"hasFile"`
	Monitored     bool   `json:"monitored"`
	EpisodeFileID int64  `json:"episodeFileId"`

	Raw json.RawMessage `json:"-"`
}

// Client defines the library manager operations used by the cleanup pipeline.
type Client interface {
	Series(ctx context.Context) ([]Series, error)
	EpisodesForSeries(ctx context.Context, seriesID int64) ([]Episode, error)
	UnmonitorEpisode(ctx context.Context, ep Episode) error
	DeleteEpisodeFile(ctx context.Context, episodeFileID int64) error
}
