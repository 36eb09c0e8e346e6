package timeseries

import (
	"covid_dashboard/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortedCountries returns the dataset keys in ascending order under the collation
// rules of tag, so "Åland Islands" sorts with the A's and "bahamas" before "Barbados".
func SortedCountries(ds models.Dataset, tag language.Tag) []string {
	names := make([]string, 0, len(ds))
	for country := range ds {
		names = append(names, country)
	}
	// a Collator is not safe for concurrent use, build one per call
	collate.New(tag).SortStrings(names)
	return names
}
