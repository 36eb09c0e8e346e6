package dashboard

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"covid_dashboard/internal/models"

	"golang.org/x/text/language"
)

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func testDataset(t *testing.T) models.Dataset {
	t.Helper()
	return models.Dataset{
		"B": {{Date: mustDay(t, "2020-01-03"), Confirmed: 5}},
		"A": {
			{Date: mustDay(t, "2020-01-01"), Confirmed: 1},
			{Date: mustDay(t, "2020-01-05"), Confirmed: 10, Deaths: 1},
		},
	}
}

func TestNewState_UsesGlobalEarliestDateAndFirstCountry(t *testing.T) {
	t.Parallel()

	today := time.Date(2020, 2, 1, 15, 4, 5, 0, time.UTC)
	s := NewState(testDataset(t), today, language.English)

	if !s.Range.From.Equal(mustDay(t, "2020-01-01")) {
		t.Fatalf("Range.From = %v; want 2020-01-01", s.Range.From)
	}
	if !s.Range.To.Equal(mustDay(t, "2020-02-01")) {
		t.Fatalf("Range.To = %v; want 2020-02-01 (today truncated)", s.Range.To)
	}
	if s.Bounds != s.Range {
		t.Fatalf("Bounds = %+v; want initial range %+v", s.Bounds, s.Range)
	}
	if s.Selected != "A" {
		t.Fatalf("Selected = %q; want A", s.Selected)
	}
}

func TestNewState_EmptyDataset(t *testing.T) {
	t.Parallel()

	today := mustDay(t, "2021-06-01")
	s := NewState(models.Dataset{}, today, language.English)
	if !s.Range.From.Equal(today) || !s.Range.To.Equal(today) {
		t.Fatalf("expected [today, today], got %+v", s.Range)
	}
	if s.Selected != "" {
		t.Fatalf("expected no selection, got %q", s.Selected)
	}

	vm := Render(s)
	if vm.Chart != nil {
		t.Fatalf("expected no chart, got %+v", vm.Chart)
	}
	if vm.TotalConfirmed != 0 || vm.LastUpdated != "" || len(vm.Rows) != 0 {
		t.Fatalf("unexpected view model: %+v", vm)
	}
}

func TestOnRangeChange(t *testing.T) {
	t.Parallel()

	s := NewState(testDataset(t), mustDay(t, "2020-02-01"), language.English)
	from := time.Date(2020, 1, 2, 10, 0, 0, 0, time.UTC)

	next := OnRangeChange(s, RangeChange{From: &from})
	if !next.Range.From.Equal(mustDay(t, "2020-01-02")) {
		t.Fatalf("From = %v", next.Range.From)
	}
	if !next.Range.To.Equal(s.Range.To) {
		t.Fatalf("To changed unexpectedly: %v", next.Range.To)
	}
	// the input state is a value and stays untouched
	if !s.Range.From.Equal(mustDay(t, "2020-01-01")) {
		t.Fatalf("original state mutated: %+v", s.Range)
	}
}

func TestOnCountrySelect(t *testing.T) {
	t.Parallel()

	s := NewState(testDataset(t), mustDay(t, "2020-02-01"), language.English)

	next, err := OnCountrySelect(s, "B")
	if err != nil || next.Selected != "B" {
		t.Fatalf("OnCountrySelect(B) = %q, %v", next.Selected, err)
	}

	same, err := OnCountrySelect(next, "Atlantis")
	if !errors.Is(err, ErrUnknownCountry) {
		t.Fatalf("expected ErrUnknownCountry, got %v", err)
	}
	if same.Selected != "B" {
		t.Fatalf("selection changed on error: %q", same.Selected)
	}
}

func TestRender_FilteredTableAndChart(t *testing.T) {
	t.Parallel()

	s := NewState(testDataset(t), mustDay(t, "2020-02-01"), language.English)
	from, to := mustDay(t, "2020-01-02"), mustDay(t, "2020-01-04")
	s = OnRangeChange(s, RangeChange{From: &from, To: &to})

	vm := Render(s)

	wantRows := []Row{
		{Country: "A", HasData: false},
		{Country: "B", Confirmed: 5, HasData: true},
	}
	if !reflect.DeepEqual(vm.Rows, wantRows) {
		t.Fatalf("Rows = %+v; want %+v", vm.Rows, wantRows)
	}

	// headline figures ignore the filter
	if vm.TotalConfirmed != 15 || vm.TotalDeaths != 1 || vm.LastUpdated != "2020-01-05" || vm.CountryCount != 2 {
		t.Fatalf("unexpected summary: %+v", vm.Summary)
	}

	wantRange := RangeView{From: "2020-01-02", To: "2020-01-04", Min: "2020-01-01", Max: "2020-02-01"}
	if vm.Range != wantRange {
		t.Fatalf("Range = %+v; want %+v", vm.Range, wantRange)
	}
	if !reflect.DeepEqual(vm.Countries, []string{"A", "B"}) {
		t.Fatalf("Countries = %v", vm.Countries)
	}

	if vm.Chart == nil || vm.Chart.Country != "A" {
		t.Fatalf("expected chart for A, got %+v", vm.Chart)
	}
	if len(vm.Chart.Labels) != 0 || len(vm.Chart.Datasets) != 2 || len(vm.Chart.Datasets[0].Data) != 0 {
		t.Fatalf("expected empty chart series for A in range, got %+v", vm.Chart)
	}
}

func TestRender_InvertedRangeIsEmptyNotError(t *testing.T) {
	t.Parallel()

	s := NewState(testDataset(t), mustDay(t, "2020-02-01"), language.English)
	from, to := mustDay(t, "2020-01-05"), mustDay(t, "2020-01-01")
	vm := Render(OnRangeChange(s, RangeChange{From: &from, To: &to}))

	for _, row := range vm.Rows {
		if row.HasData {
			t.Fatalf("expected no data for %s in inverted range", row.Country)
		}
	}
	if len(vm.Rows) != 2 {
		t.Fatalf("expected every country listed, got %d rows", len(vm.Rows))
	}
}

func TestBuildChart(t *testing.T) {
	t.Parallel()

	c := BuildChart("A", testDataset(t)["A"])

	if c.Type != "line" || c.Country != "A" {
		t.Fatalf("unexpected chart header: %+v", c)
	}
	if !reflect.DeepEqual(c.Labels, []string{"2020-01-01", "2020-01-05"}) {
		t.Fatalf("Labels = %v", c.Labels)
	}
	confirmed, deaths := c.Datasets[0], c.Datasets[1]
	if confirmed.Label != "Confirmed Cases" || confirmed.BorderColor != "#5ab0e2" || confirmed.Fill {
		t.Fatalf("unexpected confirmed dataset: %+v", confirmed)
	}
	if deaths.Label != "Deaths" || deaths.BorderColor != "rgb(255, 99, 132)" || len(deaths.BorderDash) == 0 {
		t.Fatalf("unexpected deaths dataset: %+v", deaths)
	}
	if confirmed.Data[1].Y != 10 || deaths.Data[1].Y != 1 {
		t.Fatalf("unexpected data: %+v / %+v", confirmed.Data, deaths.Data)
	}
}

func TestRows(t *testing.T) {
	t.Parallel()

	rows := Rows(testDataset(t), language.English)
	want := []Row{
		{Country: "A", Confirmed: 10, Deaths: 1, HasData: true},
		{Country: "B", Confirmed: 5, HasData: true},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("Rows() = %+v; want %+v", rows, want)
	}
}
