package timeseries

import (
	"time"

	"covid_dashboard/internal/models"
)

// Latest returns the last record of series. ok is false for an empty series.
func Latest(series models.CountrySeries) (rec models.DailyRecord, ok bool) {
	if len(series) == 0 {
		return models.DailyRecord{}, false
	}
	return series[len(series)-1], true
}

// TotalConfirmed sums the latest confirmed count of every country.
// Countries with an empty series contribute nothing.
func TotalConfirmed(ds models.Dataset) int64 {
	var total int64
	for _, series := range ds {
		if rec, ok := Latest(series); ok {
			total += rec.Confirmed
		}
	}
	return total
}

// TotalDeaths sums the latest death count of every country, skipping empty series.
func TotalDeaths(ds models.Dataset) int64 {
	var total int64
	for _, series := range ds {
		if rec, ok := Latest(series); ok {
			total += rec.Deaths
		}
	}
	return total
}

// EarliestDate is the day of the first record across all countries.
func EarliestDate(ds models.Dataset) (time.Time, bool) {
	var (
		earliest time.Time
		found    bool
	)
	for _, series := range ds {
		if len(series) == 0 {
			continue
		}
		d := Day(series[0].Date)
		if !found || d.Before(earliest) {
			earliest, found = d, true
		}
	}
	return earliest, found
}

// LatestDate is the day of the most recent record across all countries.
func LatestDate(ds models.Dataset) (time.Time, bool) {
	var (
		latest time.Time
		found  bool
	)
	for _, series := range ds {
		rec, ok := Latest(series)
		if !ok {
			continue
		}
		d := Day(rec.Date)
		if !found || d.After(latest) {
			latest, found = d, true
		}
	}
	return latest, found
}

// RecordCount is the number of records over all countries.
func RecordCount(ds models.Dataset) int {
	n := 0
	for _, series := range ds {
		n += len(series)
	}
	return n
}
