package cleanup

import (
	"context"
	"fmt"
	"sync"
	"time"

	"sweeparr/internal/services/plex"
	"sweeparr/internal/services/sonarr"
)

var fixedNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func testEpisode(id int64, airedDaysBefore int, hasFile bool) sonarr.Episode {
	return sonarr.Episode{
		ID:            id,
		Title:         fmt.Sprintf("Episode %d", id),
		AirDateUTC:    fixedNow.AddDate(0, 0, -airedDaysBefore).Format(time.RFC3339),
		HasFile:       hasFile,
		Monitored:     true,
		EpisodeFileID: id * 100,
	}
}

// fakeLibrary implements sonarr.Client with recorded calls. The mutex covers
// the mutating calls so parallel batches can hit it safely.
type fakeLibrary struct {
	mu           sync.Mutex
	series       []sonarr.Series
	seriesErr    error
	episodes     map[int64][]sonarr.Episode
	episodesErr  map[int64]error
	unmonitorErr map[int64]error
	deleteErr    map[int64]error

	fetched     []int64
	unmonitored []int64
	deleted     []int64
}

func (f *fakeLibrary) Series(ctx context.Context) ([]sonarr.Series, error) {
	return f.series, f.seriesErr
}

func (f *fakeLibrary) EpisodesForSeries(ctx context.Context, seriesID int64) ([]sonarr.Episode, error) {
	f.mu.Lock()
	f.fetched = append(f.fetched, seriesID)
	f.mu.Unlock()
	if err := f.episodesErr[seriesID]; err != nil {
		return nil, err
	}
	return f.episodes[seriesID], nil
}

func (f *fakeLibrary) UnmonitorEpisode(ctx context.Context, ep sonarr.Episode) error {
	if err := f.unmonitorErr[ep.ID]; err != nil {
		return err
	}
	f.mu.Lock()
	f.unmonitored = append(f.unmonitored, ep.ID)
	f.mu.Unlock()
	return nil
}

func (f *fakeLibrary) DeleteEpisodeFile(ctx context.Context, episodeFileID int64) error {
	if err := f.deleteErr[episodeFileID]; err != nil {
		return err
	}
	f.mu.Lock()
	f.deleted = append(f.deleted, episodeFileID)
	f.mu.Unlock()
	return nil
}

func (f *fakeLibrary) mutations() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.unmonitored) + len(f.deleted)
}

// fakePlex implements plex.Service with recorded refresh calls.
type fakePlex struct {
	mu          sync.Mutex
	sections    []plex.Section
	sectionsErr error
	refreshErr  map[string]error

	refreshed []string
}

func (f *fakePlex) Sections(ctx context.Context) ([]plex.Section, error) {
	return f.sections, f.sectionsErr
}

func (f *fakePlex) RefreshSection(ctx context.Context, key string) error {
	if err := f.refreshErr[key]; err != nil {
		return err
	}
	f.mu.Lock()
	f.refreshed = append(f.refreshed, key)
	f.mu.Unlock()
	return nil
}

func (f *fakePlex) refreshCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.refreshed)
}
