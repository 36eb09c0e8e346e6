package dashboard

import (
	"time"

	"covid_dashboard/internal/models"
	"covid_dashboard/internal/timeseries"

	"golang.org/x/text/language"
)

// Chart styling understood by the front-end line chart.
const (
	chartType         = "line"
	confirmedLabel    = "Confirmed Cases"
	confirmedColor    = "#5ab0e2"
	deathsLabel       = "Deaths"
	deathsColor       = "rgb(255, 99, 132)"
	deathsDashSegment = 5
)

// ViewModel is the complete render output for one dashboard state.
type ViewModel struct {
	Summary
	Range     RangeView `json:"range"`
	Countries []string  `json:"countries"`
	Selected  string    `json:"selected"`
	Rows      []Row     `json:"rows"`
	Chart     *Chart    `json:"chart,omitempty"`
}

// Summary holds the headline figures, always computed on the unfiltered dataset.
type Summary struct {
	LastUpdated    string `json:"last_updated,omitempty"`
	TotalConfirmed int64  `json:"total_confirmed"`
	TotalDeaths    int64  `json:"total_deaths"`
	CountryCount   int    `json:"country_count"`
}

// RangeView describes the date inputs: current values plus their allowed bounds.
type RangeView struct {
	From string `json:"from"`
	To   string `json:"to"`
	Min  string `json:"min"`
	Max  string `json:"max"`
}

// Row is one line of the summary table.
type Row struct {
	Country   string `json:"country"`
	Confirmed int64  `json:"confirmed"`
	Deaths    int64  `json:"deaths"`
	HasData   bool   `json:"has_data"` // false when the range holds no record for the country
}

// Chart is a line chart description for the selected country.
type Chart struct {
	Type     string         `json:"type"`
	Country  string         `json:"country"`
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// ChartDataset is one line of the chart.
type ChartDataset struct {
	Label           string             `json:"label"`
	BackgroundColor string             `json:"backgroundColor"`
	BorderColor     string             `json:"borderColor"`
	Fill            bool               `json:"fill"`
	BorderDash      []int              `json:"borderDash,omitempty"`
	Data            []timeseries.Point `json:"data"`
}

// Render builds the ViewModel for s. The table and chart reflect the active range.
func Render(s State) ViewModel {
	filtered := timeseries.Filter(s.Dataset, s.Range)
	countries := timeseries.SortedCountries(s.Dataset, s.Locale)

	vm := ViewModel{
		Summary:   Summarize(s.Dataset),
		Range:     Inputs(s),
		Countries: countries,
		Selected:  s.Selected,
		Rows:      rowsInOrder(filtered, countries),
	}
	if s.Selected != "" {
		if series, ok := filtered[s.Selected]; ok {
			c := BuildChart(s.Selected, series)
			vm.Chart = &c
		}
	}
	return vm
}

// Summarize computes the headline figures of ds.
func Summarize(ds models.Dataset) Summary {
	sum := Summary{
		TotalConfirmed: timeseries.TotalConfirmed(ds),
		TotalDeaths:    timeseries.TotalDeaths(ds),
		CountryCount:   len(ds),
	}
	if latest, ok := timeseries.LatestDate(ds); ok {
		sum.LastUpdated = latest.Format(models.DateLayout)
	}
	return sum
}

// Rows returns the summary table for ds sorted by country under locale.
func Rows(ds models.Dataset, locale language.Tag) []Row {
	return rowsInOrder(ds, timeseries.SortedCountries(ds, locale))
}

func rowsInOrder(ds models.Dataset, countries []string) []Row {
	rows := make([]Row, 0, len(countries))
	for _, country := range countries {
		row := Row{Country: country}
		if rec, ok := timeseries.Latest(ds[country]); ok {
			row.Confirmed = rec.Confirmed
			row.Deaths = rec.Deaths
			row.HasData = true
		}
		rows = append(rows, row)
	}
	return rows
}

// BuildChart projects series into the two-line chart shown for a single country.
func BuildChart(country string, series models.CountrySeries) Chart {
	p := timeseries.Project(series)
	return Chart{
		Type:    chartType,
		Country: country,
		Labels:  timeseries.Labels(p.Confirmed),
		Datasets: []ChartDataset{
			{
				Label:           confirmedLabel,
				BackgroundColor: confirmedColor,
				BorderColor:     confirmedColor,
				Data:            p.Confirmed,
			},
			{
				Label:           deathsLabel,
				BackgroundColor: deathsColor,
				BorderColor:     deathsColor,
				BorderDash:      []int{deathsDashSegment, deathsDashSegment},
				Data:            p.Deaths,
			},
		},
	}
}

// Inputs returns the date-range controls for s.
func Inputs(s State) RangeView {
	return RangeView{
		From: formatDay(s.Range.From),
		To:   formatDay(s.Range.To),
		Min:  formatDay(s.Bounds.From),
		Max:  formatDay(s.Bounds.To),
	}
}

func formatDay(t time.Time) string {
	return timeseries.Day(t).Format(models.DateLayout)
}
