package plex

import "context"

// ShowSectionType is the Directory type attribute Plex reports for TV libraries.
const ShowSectionType = "show"

// RefreshShowSections triggers a rescan of every section whose type is "show".
// It returns the sections refreshed before any failure, so callers can report
// partial progress alongside the error.
func RefreshShowSections(ctx context.Context, svc Service) ([]Section, error) {
	sections, err := svc.Sections(ctx)
	if err != nil {
		return nil, err
	}

	refreshed := make([]Section, 0, len(sections))
	for _, section := range sections {
		if section.Type != ShowSectionType {
			continue
		}
		if err := svc.RefreshSection(ctx, section.Key); err != nil {
			return refreshed, err
		}
		refreshed = append(refreshed, section)
	}
	return refreshed, nil
}
