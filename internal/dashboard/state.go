// Package dashboard turns a dataset and the user's current choices into a
// ViewModel that a browser can render without further computation.
//
// State is an explicit value: event handlers take the current State and an
// event and return the next State, and Render is a pure function of State.
package dashboard

import (
	"errors"
	"time"

	"covid_dashboard/internal/models"
	"covid_dashboard/internal/timeseries"

	"golang.org/x/text/language"
)

// ErrUnknownCountry is returned when a selection names a country absent from the dataset.
var ErrUnknownCountry = errors.New("unknown country")

// State is everything Render needs.
type State struct {
	Dataset  models.Dataset
	Range    models.DateRange // active filter
	Bounds   models.DateRange // [earliest known date, today]
	Selected string           // country shown in the chart; "" when the dataset is empty
	Locale   language.Tag
}

// RangeChange carries new filter bounds; a nil bound leaves that side unchanged.
type RangeChange struct {
	From *time.Time
	To   *time.Time
}

// NewState builds the initial state: the range spans from the earliest record of any
// country to today, and the first country in collation order is selected.
func NewState(ds models.Dataset, today time.Time, locale language.Tag) State {
	today = timeseries.Day(today)
	earliest, ok := timeseries.EarliestDate(ds)
	if !ok || earliest.After(today) {
		earliest = today
	}

	bounds := models.DateRange{From: earliest, To: today}
	s := State{
		Dataset: ds,
		Range:   bounds,
		Bounds:  bounds,
		Locale:  locale,
	}
	if countries := timeseries.SortedCountries(ds, locale); len(countries) > 0 {
		s.Selected = countries[0]
	}
	return s
}

// OnRangeChange applies a user edit of the from/to inputs.
// The result is not validated: an inverted range renders as empty series.
func OnRangeChange(s State, ev RangeChange) State {
	if ev.From != nil {
		s.Range.From = timeseries.Day(*ev.From)
	}
	if ev.To != nil {
		s.Range.To = timeseries.Day(*ev.To)
	}
	return s
}

// OnCountrySelect switches the chart to country. On an unknown country the state is
// returned unchanged together with ErrUnknownCountry.
func OnCountrySelect(s State, country string) (State, error) {
	if _, ok := s.Dataset[country]; !ok {
		return s, ErrUnknownCountry
	}
	s.Selected = country
	return s, nil
}
