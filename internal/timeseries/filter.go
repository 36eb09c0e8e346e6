// Package timeseries holds the pure data logic behind the dashboard: date-range
// filtering, chart projection and summary aggregation over a models.Dataset.
package timeseries

import (
	"time"

	"covid_dashboard/internal/models"
)

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Filter returns a new dataset restricted to records whose day lies in [r.From, r.To].
// Every country of ds is present in the result; countries without matching records map
// to an empty series. An inverted range (From after To) matches nothing.
func Filter(ds models.Dataset, r models.DateRange) models.Dataset {
	from, to := Day(r.From), Day(r.To)
	inverted := from.After(to)

	out := make(models.Dataset, len(ds))
	for country, series := range ds {
		kept := make(models.CountrySeries, 0, len(series))
		if !inverted {
			for _, rec := range series {
				if InRange(rec.Date, from, to) {
					kept = append(kept, rec)
				}
			}
		}
		out[country] = kept
	}
	return out
}

// InRange reports whether the day of t lies in the inclusive [from, to] day range.
func InRange(t, from, to time.Time) bool {
	d := Day(t)
	return !d.Before(Day(from)) && !d.After(Day(to))
}
