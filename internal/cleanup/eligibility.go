package cleanup

import (
	"time"

	"sweeparr/internal/services/sonarr"
)

// Cutoff returns the air-date boundary for a run: episodes that aired before
// it are old enough to remove. Computed once per run so every series sees the
// same boundary.
func Cutoff(now time.Time, daysThreshold int) time.Time {
	return now.AddDate(0, 0, -daysThreshold)
}

// EligibleEpisodes filters episodes down to the ones the run may remove: a
// downloaded file exists and the episode aired before the cutoff. Episodes
// with a missing or unparseable air date are never eligible.
func EligibleEpisodes(episodes []sonarr.Episode, cutoff time.Time) []sonarr.Episode {
	eligible := make([]sonarr.Episode, 0, len(episodes))
	for _, ep := range episodes {
		if !ep.HasFile {
			continue
		}
		aired, err := time.Parse(time.RFC3339, ep.AirDateUTC)
		if err != nil {
			continue
		}
		if aired.Before(cutoff) {
			eligible = append(eligible, ep)
		}
	}
	return eligible
}
