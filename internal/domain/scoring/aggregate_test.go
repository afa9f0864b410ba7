package scoring

import (
	"errors"
	"math"
	"testing"

	"kpiscore/internal/domain/catalog"
)

func testCategory() catalog.Category {
	return catalog.Category{
		Name:   "Performance & Delivery",
		Weight: 35,
		KPIs: []catalog.KPIDefinition{
			{Category: "Performance & Delivery", Name: "On-time Delivery", Weight: 8.75},
			{Category: "Performance & Delivery", Name: "Quality of Work", Weight: 8.75},
			{Category: "Performance & Delivery", Name: "Sprint Commitment", Weight: 8.75},
			{Category: "Performance & Delivery", Name: "Defect Rate", Weight: 8.75},
		},
	}
}

func scoreAll(t *testing.T, cat catalog.Category, actuals []float64) []ScoredKPI {
	t.Helper()
	out := make([]ScoredKPI, 0, len(actuals))
	for i, v := range actuals {
		s, err := Score(cat.KPIs[i], v)
		if err != nil {
			t.Fatalf("Score(%v): %v", v, err)
		}
		out = append(out, s)
	}
	return out
}

func TestAggregateCategory(t *testing.T) {
	cat := testCategory()
	scored := scoreAll(t, cat, []float64{100, 75, 40, 100})

	cs, err := AggregateCategory(cat, scored)
	if err != nil {
		t.Fatalf("AggregateCategory: %v", err)
	}
	// 8.75 + 4.375 + 0 + 8.75 = 21.875 of 35
	if cs.Earned != 21.875 {
		t.Fatalf("earned = %v, want 21.875", cs.Earned)
	}
	if cs.Possible != 35 {
		t.Fatalf("possible = %v, want 35", cs.Possible)
	}
	if math.Abs(cs.Percent-62.5) > 1e-9 {
		t.Fatalf("percent = %v, want 62.5", cs.Percent)
	}
	if cs.Status != CategoryNeedsAttention {
		t.Fatalf("status = %q, want %q", cs.Status, CategoryNeedsAttention)
	}
}

func TestAggregateCategoryBands(t *testing.T) {
	cat := testCategory()
	cases := []struct {
		name    string
		actuals []float64
		want    string
	}{
		{"all met is on track", []float64{100, 100, 100, 100}, CategoryOnTrack},
		{"three met one partial is improve", []float64{100, 100, 100, 60}, CategoryImprove},
		{"half credit everywhere needs attention", []float64{60, 60, 60, 60}, CategoryNeedsAttention},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cs, err := AggregateCategory(cat, scoreAll(t, cat, tc.actuals))
			if err != nil {
				t.Fatalf("AggregateCategory: %v", err)
			}
			if cs.Status != tc.want {
				t.Fatalf("status = %q (%.2f%%), want %q", cs.Status, cs.Percent, tc.want)
			}
		})
	}
}

func TestAggregateCategoryMissingKPICountsAgainstTotal(t *testing.T) {
	cat := testCategory()
	// Only two of four KPIs scored; possible still comes from the catalog.
	cs, err := AggregateCategory(cat, scoreAll(t, cat, []float64{100, 100}))
	if err != nil {
		t.Fatalf("AggregateCategory: %v", err)
	}
	if cs.Possible != 35 {
		t.Fatalf("possible = %v, want 35", cs.Possible)
	}
	if cs.Earned != 17.5 {
		t.Fatalf("earned = %v, want 17.5", cs.Earned)
	}
	if cs.Percent != 50 {
		t.Fatalf("percent = %v, want 50", cs.Percent)
	}
}

func TestAggregateCategoryZeroPossible(t *testing.T) {
	cat := catalog.Category{Name: "Empty", Weight: 0}
	if _, err := AggregateCategory(cat, nil); !errors.Is(err, catalog.ErrConfig) {
		t.Fatalf("got %v, want ErrConfig", err)
	}
}
