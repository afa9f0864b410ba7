package reports

import (
	"sort"

	"kpiscore/internal/domain/employee"
	"kpiscore/internal/domain/scoring"
)

// BuildTeamSummary rolls up the evaluated assessments of a manager's team.
// Members without an assessment are left out of the averages. Weak
// categories are those averaging below the on-track threshold, weakest
// first.
func BuildTeamSummary(managerID, period string, members []employee.Employee, assessments map[string]scoring.OverallAssessment) TeamSummary {
	summary := TeamSummary{
		ManagerID:    managerID,
		Period:       period,
		RatingCounts: make(map[string]int),
	}

	catTotals := make(map[string]float64)
	catCounts := make(map[string]int)
	var totalPercent float64

	for _, m := range members {
		a, ok := assessments[m.ID]
		if !ok {
			continue
		}
		summary.Evaluated++
		totalPercent += a.OverallPercent
		summary.RatingCounts[a.Rating]++
		summary.Members = append(summary.Members, MemberSummary{
			EmployeeID:     m.ID,
			Name:           m.Name,
			OverallPercent: a.OverallPercent,
			Rating:         a.Rating,
		})
		for _, c := range a.Categories {
			catTotals[c.Category] += c.Percent
			catCounts[c.Category]++
		}
	}
	if summary.Evaluated > 0 {
		summary.AveragePercent = totalPercent / float64(summary.Evaluated)
	}
	for i, m := range summary.Members {
		if i == 0 || m.OverallPercent > summary.HighestPercent {
			summary.HighestPercent = m.OverallPercent
		}
		if i == 0 || m.OverallPercent < summary.LowestPercent {
			summary.LowestPercent = m.OverallPercent
		}
	}

	for cat, total := range catTotals {
		avg := total / float64(catCounts[cat])
		if avg >= scoring.CategoryOnTrackThreshold {
			continue
		}
		summary.WeakCategories = append(summary.WeakCategories, CategoryAverage{Category: cat, AveragePercent: avg})
	}
	sort.Slice(summary.WeakCategories, func(i, j int) bool {
		return summary.WeakCategories[i].AveragePercent < summary.WeakCategories[j].AveragePercent
	})
	sort.Slice(summary.Members, func(i, j int) bool {
		return summary.Members[i].OverallPercent > summary.Members[j].OverallPercent
	})
	return summary
}
