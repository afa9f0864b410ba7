package scoring

import (
	"fmt"
	"math"

	"kpiscore/internal/domain/catalog"
)

// Score evaluates one actual value against its catalog definition.
// Achievement at or above 100% earns the full weight; values over 100%
// are capped and earn no extra credit. Achievement in [50, 100) earns
// half the weight, anything below earns nothing.
func Score(def catalog.KPIDefinition, actual float64) (ScoredKPI, error) {
	if math.IsNaN(actual) || math.IsInf(actual, 0) {
		return ScoredKPI{}, fmt.Errorf("%w: %s/%s: value is not finite", ErrValidation, def.Category, def.Name)
	}
	if actual < 0 {
		return ScoredKPI{}, fmt.Errorf("%w: %s/%s: value %.2f is negative", ErrValidation, def.Category, def.Name, actual)
	}

	s := ScoredKPI{
		Category:    def.Category,
		KPI:         def.Name,
		ActualValue: actual,
		Weight:      def.Weight,
	}
	switch {
	case actual >= MetThreshold:
		s.Earned = def.Weight
		s.Status = StatusMet
	case actual >= PartialThreshold:
		s.Earned = def.Weight * PartialCredit
		s.Status = StatusPartial
	default:
		s.Earned = 0
		s.Status = StatusNotMet
	}
	return s, nil
}
