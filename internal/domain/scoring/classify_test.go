package scoring

import (
	"errors"
	"math"
	"strings"
	"testing"

	"kpiscore/internal/domain/catalog"
)

func fullActuals(value float64) []Actual {
	c := catalog.Default()
	var actuals []Actual
	for _, def := range c.Definitions() {
		actuals = append(actuals, Actual{Category: def.Category, KPI: def.Name, Value: value})
	}
	return actuals
}

func TestEvaluateAllMet(t *testing.T) {
	a, err := Evaluate(catalog.Default(), "E-001", "2026-Q2", fullActuals(100))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if a.EmployeeID != "E-001" || a.Period != "2026-Q2" {
		t.Fatalf("unexpected identity: %+v", a)
	}
	if math.Abs(a.OverallPercent-100) > 1e-9 {
		t.Fatalf("overall = %v, want 100", a.OverallPercent)
	}
	if a.Rating != RatingExceeds {
		t.Fatalf("rating = %q, want %q", a.Rating, RatingExceeds)
	}
	if len(a.Recommendations) != 0 {
		t.Fatalf("expected no recommendations, got %v", a.Recommendations)
	}
	if len(a.Categories) != 5 {
		t.Fatalf("categories = %d, want 5", len(a.Categories))
	}
}

func TestEvaluateRatingBands(t *testing.T) {
	cases := []struct {
		name  string
		value float64
		want  string
	}{
		{"all full credit exceeds", 100, RatingExceeds},
		{"all half credit needs improvement", 75, RatingNeedsImprovement},
		{"nothing reported needs improvement", -1, RatingNeedsImprovement},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var actuals []Actual
			if tc.value >= 0 {
				actuals = fullActuals(tc.value)
			}
			a, err := Evaluate(catalog.Default(), "E-001", "2026-Q2", actuals)
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}
			if a.Rating != tc.want {
				t.Fatalf("rating = %q (%.2f%%), want %q", a.Rating, a.OverallPercent, tc.want)
			}
		})
	}
}

func TestClassifyBandBoundaries(t *testing.T) {
	cases := []struct {
		percent float64
		want    string
	}{
		{90, RatingExceeds},
		{89.999, RatingMeets},
		{80, RatingMeets},
		{79.999, RatingPartiallyMeets},
		{70, RatingPartiallyMeets},
		{69.999, RatingNeedsImprovement},
	}
	for _, tc := range cases {
		cats := []CategoryScore{{Category: "Only", Earned: tc.percent, Possible: 100, Percent: tc.percent, Status: CategoryOnTrack}}
		a, err := Classify("E-001", "2026-Q2", cats)
		if err != nil {
			t.Fatalf("Classify(%v): %v", tc.percent, err)
		}
		if a.Rating != tc.want {
			t.Fatalf("Classify(%v): rating = %q, want %q", tc.percent, a.Rating, tc.want)
		}
	}
}

func TestEvaluateMissingKPIsEarnZero(t *testing.T) {
	c := catalog.Default()
	// Report only the first category at full marks.
	var actuals []Actual
	first := c.Categories()[0]
	for _, def := range first.KPIs {
		actuals = append(actuals, Actual{Category: def.Category, KPI: def.Name, Value: 100})
	}
	a, err := Evaluate(c, "E-002", "2026-Q2", actuals)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if a.TotalPossible != 100 {
		t.Fatalf("total possible = %v, want 100", a.TotalPossible)
	}
	if math.Abs(a.TotalEarned-first.TotalWeight()) > 1e-9 {
		t.Fatalf("total earned = %v, want %v", a.TotalEarned, first.TotalWeight())
	}
	for _, cs := range a.Categories[1:] {
		for _, k := range cs.KPIs {
			if k.Status != StatusNotMet || k.Earned != 0 {
				t.Fatalf("unreported KPI %s/%s scored %+v", k.Category, k.KPI, k)
			}
		}
	}
}

func TestEvaluateDuplicateActualLastWins(t *testing.T) {
	c := catalog.Default()
	def := c.Categories()[0].KPIs[0]
	actuals := fullActuals(100)
	actuals = append(actuals, Actual{Category: def.Category, KPI: def.Name, Value: 10})

	a, err := Evaluate(c, "E-003", "2026-Q2", actuals)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	got := a.Categories[0].KPIs[0]
	if got.ActualValue != 10 || got.Status != StatusNotMet {
		t.Fatalf("duplicate did not win: %+v", got)
	}
}

func TestEvaluateUnknownKPI(t *testing.T) {
	actuals := []Actual{{Category: "No Such Category", KPI: "Nope", Value: 100}}
	if _, err := Evaluate(catalog.Default(), "E-004", "2026-Q2", actuals); !errors.Is(err, ErrValidation) {
		t.Fatalf("got %v, want ErrValidation", err)
	}
}

func TestEvaluateInvalidValueCarriesContext(t *testing.T) {
	c := catalog.Default()
	def := c.Categories()[0].KPIs[0]
	actuals := []Actual{{Category: def.Category, KPI: def.Name, Value: -5}}

	_, err := Evaluate(c, "E-005", "2026-Q2", actuals)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("got %v, want ErrValidation", err)
	}
	if !strings.Contains(err.Error(), "E-005") || !strings.Contains(err.Error(), def.Name) {
		t.Fatalf("error lacks context: %v", err)
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	actuals := fullActuals(60)
	a1, err := Evaluate(catalog.Default(), "E-006", "2026-Q2", actuals)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	a2, err := Evaluate(catalog.Default(), "E-006", "2026-Q2", actuals)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if a1.OverallPercent != a2.OverallPercent || a1.Rating != a2.Rating {
		t.Fatalf("results differ: %+v vs %+v", a1, a2)
	}
	if len(a1.Recommendations) != len(a2.Recommendations) {
		t.Fatalf("recommendation counts differ")
	}
	for i := range a1.Recommendations {
		if a1.Recommendations[i] != a2.Recommendations[i] {
			t.Fatalf("recommendation %d differs: %q vs %q", i, a1.Recommendations[i], a2.Recommendations[i])
		}
	}
}
