package plex

import (
	"context"
	"errors"
	"testing"
)

type fakeService struct {
	sections    []Section
	sectionsErr error
	refreshErr  map[string]error
	refreshed   []string
}

func (f *fakeService) Sections(ctx context.Context) ([]Section, error) {
	return f.sections, f.sectionsErr
}

func (f *fakeService) RefreshSection(ctx context.Context, key string) error {
	if err := f.refreshErr[key]; err != nil {
		return err
	}
	f.refreshed = append(f.refreshed, key)
	return nil
}

func TestRefreshShowSectionsSkipsNonShows(t *testing.T) {
	svc := &fakeService{sections: []Section{
		{Key: "1", Title: "Movies", Type: "movie"},
		{Key: "2", Title: "TV Shows", Type: "show"},
		{Key: "3", Title: "Music", Type: "artist"},
		{Key: "4", Title: "Anime", Type: "show"},
	}}

	refreshed, err := RefreshShowSections(context.Background(), svc)
	if err != nil {
		t.Fatalf("RefreshShowSections returned error: %v", err)
	}
	if len(refreshed) != 2 {
		t.Fatalf("expected 2 refreshed sections, got %d", len(refreshed))
	}
	if refreshed[0].Key != "2" || refreshed[1].Key != "4" {
		t.Fatalf("unexpected refreshed sections: %+v", refreshed)
	}
	if len(svc.refreshed) != 2 {
		t.Fatalf("expected 2 refresh calls, got %v", svc.refreshed)
	}
}

func TestRefreshShowSectionsReportsPartialProgress(t *testing.T) {
	boom := errors.New("refresh failed")
	svc := &fakeService{
		sections: []Section{
			{Key: "2", Title: "TV Shows", Type: "show"},
			{Key: "4", Title: "Anime", Type: "show"},
			{Key: "6", Title: "Documentaries", Type: "show"},
		},
		refreshErr: map[string]error{"4": boom},
	}

	refreshed, err := RefreshShowSections(context.Background(), svc)
	if !errors.Is(err, boom) {
		t.Fatalf("expected refresh error, got %v", err)
	}
	if len(refreshed) != 1 || refreshed[0].Key != "2" {
		t.Fatalf("expected only the first section refreshed, got %+v", refreshed)
	}
}

func TestRefreshShowSectionsPropagatesListError(t *testing.T) {
	svc := &fakeService{sectionsErr: errors.New("sections unavailable")}
	if _, err := RefreshShowSections(context.Background(), svc); err == nil {
		t.Fatal("expected error when listing sections fails")
	}
}
