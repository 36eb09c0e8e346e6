package service

import (
	"context"
	"time"

	"covid_dashboard/internal/dashboard"
	"covid_dashboard/internal/timeseries"

	"golang.org/x/text/language"
)

// DashboardQuery mirrors the dashboard controls: optional range bounds and a country.
type DashboardQuery struct {
	From    *time.Time
	To      *time.Time
	Country string
}

// DashboardService renders from whatever dataset is current at call time.
type DashboardService struct {
	data   Dataset
	locale language.Tag
	now    func() time.Time
}

func NewDashboardService(data Dataset, locale language.Tag) *DashboardService {
	return &DashboardService{data: data, locale: locale, now: time.Now}
}

func (s *DashboardService) state(ctx context.Context) (dashboard.State, error) {
	snap, err := s.data.Current(ctx)
	if err != nil {
		return dashboard.State{}, err
	}
	return dashboard.NewState(snap.Dataset, s.now(), s.locale), nil
}

// View applies q to a fresh state and renders it.
func (s *DashboardService) View(ctx context.Context, q DashboardQuery) (dashboard.ViewModel, error) {
	st, err := s.state(ctx)
	if err != nil {
		return dashboard.ViewModel{}, err
	}
	st = dashboard.OnRangeChange(st, dashboard.RangeChange{From: q.From, To: q.To})
	if q.Country != "" {
		if st, err = dashboard.OnCountrySelect(st, q.Country); err != nil {
			return dashboard.ViewModel{}, err
		}
	}
	return dashboard.Render(st), nil
}

func (s *DashboardService) Summary(ctx context.Context) (dashboard.Summary, error) {
	snap, err := s.data.Current(ctx)
	if err != nil {
		return dashboard.Summary{}, err
	}
	return dashboard.Summarize(snap.Dataset), nil
}

// Countries lists every country in collation order.
func (s *DashboardService) Countries(ctx context.Context) ([]string, error) {
	snap, err := s.data.Current(ctx)
	if err != nil {
		return nil, err
	}
	return timeseries.SortedCountries(snap.Dataset, s.locale), nil
}

// Series returns the chart for one country restricted to the range r.
func (s *DashboardService) Series(ctx context.Context, country string, r dashboard.RangeChange) (dashboard.Chart, error) {
	st, err := s.state(ctx)
	if err != nil {
		return dashboard.Chart{}, err
	}
	if st, err = dashboard.OnCountrySelect(st, country); err != nil {
		return dashboard.Chart{}, err
	}
	st = dashboard.OnRangeChange(st, r)
	filtered := timeseries.Filter(st.Dataset, st.Range)
	return dashboard.BuildChart(st.Selected, filtered[st.Selected]), nil
}

// Range returns the initial date-range inputs.
func (s *DashboardService) Range(ctx context.Context) (dashboard.RangeView, error) {
	st, err := s.state(ctx)
	if err != nil {
		return dashboard.RangeView{}, err
	}
	return dashboard.Inputs(st), nil
}
