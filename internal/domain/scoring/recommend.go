package scoring

import (
	"fmt"
	"sort"
)

// Recommend produces improvement pointers for every category that is not
// on track, one line per KPI that fell short. Weakest categories come
// first, then weakest KPIs within each category.
func Recommend(categories []CategoryScore) []string {
	flagged := make([]CategoryScore, 0, len(categories))
	for _, c := range categories {
		if c.Status == CategoryOnTrack {
			continue
		}
		flagged = append(flagged, c)
	}
	sort.SliceStable(flagged, func(i, j int) bool {
		return flagged[i].Percent < flagged[j].Percent
	})

	var recs []string
	for _, c := range flagged {
		short := make([]ScoredKPI, 0, len(c.KPIs))
		for _, k := range c.KPIs {
			if k.Status == StatusMet {
				continue
			}
			short = append(short, k)
		}
		sort.SliceStable(short, func(i, j int) bool {
			return short[i].ActualValue < short[j].ActualValue
		})
		for _, k := range short {
			recs = append(recs, fmt.Sprintf("%s (%.1f%%): focus on %s (%.1f%%)", c.Category, c.Percent, k.KPI, k.ActualValue))
		}
	}
	return recs
}
