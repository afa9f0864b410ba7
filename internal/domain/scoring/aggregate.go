package scoring

import (
	"fmt"

	"kpiscore/internal/domain/catalog"
)

// AggregateCategory rolls the scored KPIs of one category into a category
// score. Possible points come from the catalog, so a KPI with no reported
// actual still counts against the category total. The caller is expected
// to have synthesized Not Met entries for missing KPIs beforehand.
func AggregateCategory(cat catalog.Category, scored []ScoredKPI) (CategoryScore, error) {
	possible := cat.TotalWeight()
	if possible <= 0 {
		return CategoryScore{}, fmt.Errorf("%w: category %q has no possible points", catalog.ErrConfig, cat.Name)
	}

	cs := CategoryScore{
		Category: cat.Name,
		Possible: possible,
		KPIs:     scored,
	}
	for _, k := range scored {
		cs.Earned += k.Earned
	}
	cs.Percent = cs.Earned / cs.Possible * 100

	switch {
	case cs.Percent >= CategoryOnTrackThreshold:
		cs.Status = CategoryOnTrack
	case cs.Percent >= CategoryImproveThreshold:
		cs.Status = CategoryImprove
	default:
		cs.Status = CategoryNeedsAttention
	}
	return cs, nil
}
