package reports

import (
	"encoding/csv"
	"fmt"
	"io"

	"kpiscore/internal/domain/scoring"
)

// WriteAssessmentCSV writes one row per scored KPI, a subtotal row per
// category and a trailing summary row.
func WriteAssessmentCSV(w io.Writer, a scoring.OverallAssessment) error {
	cw := csv.NewWriter(w)
	header := []string{"employee_id", "period", "category", "kpi", "actual", "weight", "earned", "status"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, c := range a.Categories {
		for _, k := range c.KPIs {
			row := []string{
				a.EmployeeID, a.Period, k.Category, k.KPI,
				fmt.Sprintf("%.2f", k.ActualValue),
				fmt.Sprintf("%.2f", k.Weight),
				fmt.Sprintf("%.2f", k.Earned),
				k.Status,
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		subtotal := []string{
			a.EmployeeID, a.Period, c.Category, "SUBTOTAL",
			fmt.Sprintf("%.2f", c.Percent),
			fmt.Sprintf("%.2f", c.Possible),
			fmt.Sprintf("%.2f", c.Earned),
			c.Status,
		}
		if err := cw.Write(subtotal); err != nil {
			return err
		}
	}
	summary := []string{
		a.EmployeeID, a.Period, "TOTAL", "",
		fmt.Sprintf("%.2f", a.OverallPercent),
		fmt.Sprintf("%.2f", a.TotalPossible),
		fmt.Sprintf("%.2f", a.TotalEarned),
		a.Rating,
	}
	if err := cw.Write(summary); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
