package reports

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"kpiscore/internal/domain/catalog"
	"kpiscore/internal/domain/employee"
	"kpiscore/internal/domain/scoring"
)

func sampleAssessment(t *testing.T, employeeID string, value float64) scoring.OverallAssessment {
	t.Helper()
	c := catalog.Default()
	var actuals []scoring.Actual
	for _, def := range c.Definitions() {
		actuals = append(actuals, scoring.Actual{Category: def.Category, KPI: def.Name, Value: value})
	}
	a, err := scoring.Evaluate(c, employeeID, "2026-Q2", actuals)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	return a
}

func TestWriteAssessmentCSV(t *testing.T) {
	a := sampleAssessment(t, "E-001", 100)
	var buf bytes.Buffer
	if err := WriteAssessmentCSV(&buf, a); err != nil {
		t.Fatalf("WriteAssessmentCSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	// header + 20 KPIs + 5 subtotals + summary
	if len(rows) != 27 {
		t.Fatalf("rows = %d, want 27", len(rows))
	}
	if rows[0][0] != "employee_id" {
		t.Fatalf("header = %v", rows[0])
	}
	var subtotals int
	for _, row := range rows {
		if row[3] == "SUBTOTAL" {
			subtotals++
			if row[7] != scoring.CategoryOnTrack {
				t.Fatalf("subtotal status = %v", row)
			}
		}
	}
	if subtotals != 5 {
		t.Fatalf("subtotal rows = %d, want 5", subtotals)
	}
	last := rows[len(rows)-1]
	if last[2] != "TOTAL" || last[7] != scoring.RatingExceeds {
		t.Fatalf("summary row = %v", last)
	}
}

func TestWriteAssessmentPDF(t *testing.T) {
	a := sampleAssessment(t, "E-001", 60)
	var buf bytes.Buffer
	if err := WriteAssessmentPDF(&buf, "Ada Lovelace", a); err != nil {
		t.Fatalf("WriteAssessmentPDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF: %q", buf.Bytes()[:8])
	}
}

func TestBuildTeamSummary(t *testing.T) {
	members := []employee.Employee{
		{ID: "E-001", Name: "Ada", ManagerID: "M-1"},
		{ID: "E-002", Name: "Grace", ManagerID: "M-1"},
		{ID: "E-003", Name: "Alan", ManagerID: "M-1"},
	}
	assessments := map[string]scoring.OverallAssessment{
		"E-001": sampleAssessment(t, "E-001", 100),
		"E-002": sampleAssessment(t, "E-002", 60),
	}

	s := BuildTeamSummary("M-1", "2026-Q2", members, assessments)
	if s.Evaluated != 2 {
		t.Fatalf("evaluated = %d, want 2", s.Evaluated)
	}
	// (100 + 50) / 2
	if s.AveragePercent != 75 {
		t.Fatalf("average = %v, want 75", s.AveragePercent)
	}
	if s.RatingCounts[scoring.RatingExceeds] != 1 || s.RatingCounts[scoring.RatingNeedsImprovement] != 1 {
		t.Fatalf("rating counts = %v", s.RatingCounts)
	}
	if s.HighestPercent != 100 || s.LowestPercent != 50 {
		t.Fatalf("highest/lowest = %v/%v, want 100/50", s.HighestPercent, s.LowestPercent)
	}
	// Highest performer first.
	if s.Members[0].EmployeeID != "E-001" || s.Members[1].EmployeeID != "E-002" {
		t.Fatalf("member order = %v", s.Members)
	}
	// Every category averages 75%, all below the on-track threshold.
	if len(s.WeakCategories) != 5 {
		t.Fatalf("weak categories = %v", s.WeakCategories)
	}
	for _, wc := range s.WeakCategories {
		if wc.AveragePercent != 75 {
			t.Fatalf("category %s average = %v, want 75", wc.Category, wc.AveragePercent)
		}
	}
}

func TestBuildTeamSummaryEmptyTeam(t *testing.T) {
	s := BuildTeamSummary("M-1", "2026-Q2", nil, nil)
	if s.Evaluated != 0 || s.AveragePercent != 0 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if len(s.Members) != 0 || len(s.WeakCategories) != 0 {
		t.Fatalf("unexpected contents: %+v", s)
	}
}

func TestCSVEscapesCommas(t *testing.T) {
	a := sampleAssessment(t, "E-001", 100)
	var buf bytes.Buffer
	if err := WriteAssessmentCSV(&buf, a); err != nil {
		t.Fatalf("WriteAssessmentCSV: %v", err)
	}
	// Category names contain '&' and spaces; a parser must get them back intact.
	if !strings.Contains(buf.String(), "Performance & Delivery") {
		t.Fatal("category name missing from CSV")
	}
}
