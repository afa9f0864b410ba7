package reports

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"kpiscore/internal/domain/scoring"
)

// WriteAssessmentPDF renders a one-page assessment report.
func WriteAssessmentPDF(w io.Writer, employeeName string, a scoring.OverallAssessment) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Performance Assessment")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", employeeName, a.EmployeeID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", a.Period))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Overall: %.1f%% (%s)", a.OverallPercent, a.Rating))
	pdf.Ln(10)

	for _, c := range a.Categories {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, fmt.Sprintf("%s: %.1f%% (%s)", c.Category, c.Percent, c.Status))
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 10)
		for _, k := range c.KPIs {
			pdf.Cell(0, 6, fmt.Sprintf("  %s: actual %.1f, earned %.2f of %.2f (%s)", k.KPI, k.ActualValue, k.Earned, k.Weight, k.Status))
			pdf.Ln(5)
		}
		pdf.Ln(2)
	}

	if len(a.Recommendations) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Recommendations")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 10)
		for _, r := range a.Recommendations {
			pdf.Cell(0, 6, "  "+r)
			pdf.Ln(5)
		}
	}
	return pdf.Output(w)
}
