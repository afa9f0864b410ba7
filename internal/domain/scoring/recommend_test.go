package scoring

import (
	"strings"
	"testing"
)

func TestRecommendOrdersWeakestFirst(t *testing.T) {
	cats := []CategoryScore{
		{
			Category: "Collaboration & Team Engagement", Percent: 75, Status: CategoryImprove,
			KPIs: []ScoredKPI{
				{Category: "Collaboration & Team Engagement", KPI: "Peer Feedback", ActualValue: 60, Status: StatusPartial},
				{Category: "Collaboration & Team Engagement", KPI: "Knowledge Sharing", ActualValue: 100, Status: StatusMet},
			},
		},
		{
			Category: "Learning & Growth", Percent: 40, Status: CategoryNeedsAttention,
			KPIs: []ScoredKPI{
				{Category: "Learning & Growth", KPI: "Certifications", ActualValue: 30, Status: StatusNotMet},
				{Category: "Learning & Growth", KPI: "Training Hours", ActualValue: 55, Status: StatusPartial},
			},
		},
		{
			Category: "Performance & Delivery", Percent: 95, Status: CategoryOnTrack,
			KPIs: []ScoredKPI{
				{Category: "Performance & Delivery", KPI: "Quality of Work", ActualValue: 80, Status: StatusPartial},
			},
		},
	}

	recs := Recommend(cats)
	if len(recs) != 3 {
		t.Fatalf("got %d recommendations, want 3: %v", len(recs), recs)
	}
	// Weakest category first, then its weakest KPI.
	if !strings.HasPrefix(recs[0], "Learning & Growth (40.0%): focus on Certifications") {
		t.Fatalf("recs[0] = %q", recs[0])
	}
	if !strings.Contains(recs[1], "Training Hours") {
		t.Fatalf("recs[1] = %q", recs[1])
	}
	if !strings.HasPrefix(recs[2], "Collaboration & Team Engagement") || !strings.Contains(recs[2], "Peer Feedback") {
		t.Fatalf("recs[2] = %q", recs[2])
	}
	// On-track categories contribute nothing, even with a partial KPI.
	for _, r := range recs {
		if strings.Contains(r, "Performance & Delivery") {
			t.Fatalf("on-track category leaked into recommendations: %q", r)
		}
	}
}

func TestRecommendEmptyWhenAllOnTrack(t *testing.T) {
	cats := []CategoryScore{
		{Category: "Performance & Delivery", Percent: 100, Status: CategoryOnTrack},
		{Category: "Learning & Growth", Percent: 90, Status: CategoryOnTrack},
	}
	if recs := Recommend(cats); len(recs) != 0 {
		t.Fatalf("expected none, got %v", recs)
	}
}
