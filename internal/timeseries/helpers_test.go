package timeseries

import (
	"testing"
	"time"

	"covid_dashboard/internal/models"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func rec(t *testing.T, date string, confirmed, deaths int64) models.DailyRecord {
	t.Helper()
	return models.DailyRecord{Date: day(t, date), Confirmed: confirmed, Deaths: deaths}
}

// scenarioDataset is the two-country dataset used across the package tests.
func scenarioDataset(t *testing.T) models.Dataset {
	t.Helper()
	return models.Dataset{
		"A": {rec(t, "2020-01-01", 1, 0), rec(t, "2020-01-05", 10, 1)},
		"B": {rec(t, "2020-01-03", 5, 0)},
	}
}
