package cleanup

import "sweeparr/internal/services/sonarr"

// DailySeriesType is the library manager's series type for date-based shows.
const DailySeriesType = "daily"

// SelectDaily returns the series whose type is exactly "daily", preserving
// upstream order.
func SelectDaily(series []sonarr.Series) []sonarr.Series {
	daily := make([]sonarr.Series, 0, len(series))
	for _, s := range series {
		if s.SeriesType == DailySeriesType {
			daily = append(daily, s)
		}
	}
	return daily
}
