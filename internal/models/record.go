package models

import "time"

// DateLayout is the calendar-date wire format used by the API.
const DateLayout = "2006-01-02"

// DailyRecord is one day of cumulative counts for a country.
type DailyRecord struct {
	Date      time.Time `json:"date"`      // UTC midnight
	Confirmed int64     `json:"confirmed"` // cumulative, >= 0
	Deaths    int64     `json:"deaths"`    // cumulative, >= 0
}

// CountrySeries is ordered by strictly increasing Date; the last element is the latest record.
type CountrySeries []DailyRecord

// Dataset maps a country name to its series. Datasets are never mutated in place.
type Dataset map[string]CountrySeries

// DateRange is an inclusive [From, To] bound on calendar days.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Snapshot is a dataset together with where and when it was fetched.
type Snapshot struct {
	Dataset   Dataset   `json:"-"`
	SourceURL string    `json:"source_url"`
	FetchedAt time.Time `json:"fetched_at"`
}

// IsZero reports whether the snapshot carries no data yet.
func (s Snapshot) IsZero() bool {
	return s.Dataset == nil && s.FetchedAt.IsZero()
}
