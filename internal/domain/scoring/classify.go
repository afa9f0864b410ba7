package scoring

import (
	"fmt"

	"kpiscore/internal/domain/catalog"
)

// Classify combines per-category scores into the overall assessment.
// Categories must already be aggregated; their order is preserved.
func Classify(employeeID, period string, categories []CategoryScore) (OverallAssessment, error) {
	a := OverallAssessment{
		EmployeeID: employeeID,
		Period:     period,
		Categories: categories,
	}
	for _, c := range categories {
		a.TotalEarned += c.Earned
		a.TotalPossible += c.Possible
	}
	if a.TotalPossible <= 0 {
		return OverallAssessment{}, fmt.Errorf("%w: total possible points is zero", catalog.ErrConfig)
	}
	a.OverallPercent = a.TotalEarned / a.TotalPossible * 100

	switch {
	case a.OverallPercent >= RatingExceedsThreshold:
		a.Rating = RatingExceeds
	case a.OverallPercent >= RatingMeetsThreshold:
		a.Rating = RatingMeets
	case a.OverallPercent >= RatingPartialThreshold:
		a.Rating = RatingPartiallyMeets
	default:
		a.Rating = RatingNeedsImprovement
	}
	a.Recommendations = Recommend(categories)
	return a, nil
}

// Evaluate scores a full set of actuals against the catalog and produces
// the overall assessment. KPIs with no reported actual are treated as
// Not Met with an actual of zero. When the same KPI is reported more
// than once the last value wins.
func Evaluate(c *catalog.Catalog, employeeID, period string, actuals []Actual) (OverallAssessment, error) {
	byKPI := make(map[string]map[string]float64)
	for _, a := range actuals {
		if _, ok := c.Lookup(a.Category, a.KPI); !ok {
			return OverallAssessment{}, fmt.Errorf("%w: unknown KPI %s/%s", ErrValidation, a.Category, a.KPI)
		}
		if byKPI[a.Category] == nil {
			byKPI[a.Category] = make(map[string]float64)
		}
		byKPI[a.Category][a.KPI] = a.Value
	}

	categories := make([]CategoryScore, 0, len(c.Categories()))
	for _, cat := range c.Categories() {
		scored := make([]ScoredKPI, 0, len(cat.KPIs))
		for _, def := range cat.KPIs {
			value, reported := byKPI[cat.Name][def.Name]
			if !reported {
				scored = append(scored, ScoredKPI{
					Category: def.Category,
					KPI:      def.Name,
					Weight:   def.Weight,
					Status:   StatusNotMet,
				})
				continue
			}
			s, err := Score(def, value)
			if err != nil {
				return OverallAssessment{}, fmt.Errorf("employee %s: %w", employeeID, err)
			}
			scored = append(scored, s)
		}
		cs, err := AggregateCategory(cat, scored)
		if err != nil {
			return OverallAssessment{}, err
		}
		categories = append(categories, cs)
	}
	return Classify(employeeID, period, categories)
}
