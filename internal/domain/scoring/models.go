package scoring

// Actual is one reported KPI value for an employee in a review period.
type Actual struct {
	Category string  `json:"category"`
	KPI      string  `json:"kpi"`
	Value    float64 `json:"value"`
}

// ScoredKPI is a single KPI after scoring against its catalog weight.
type ScoredKPI struct {
	Category    string  `json:"category"`
	KPI         string  `json:"kpi"`
	ActualValue float64 `json:"actualValue"`
	Weight      float64 `json:"weight"`
	Earned      float64 `json:"earned"`
	Status      string  `json:"status"`
}

// CategoryScore aggregates every KPI in one catalog category.
type CategoryScore struct {
	Category string      `json:"category"`
	Earned   float64     `json:"earned"`
	Possible float64     `json:"possible"`
	Percent  float64     `json:"percent"`
	Status   string      `json:"status"`
	KPIs     []ScoredKPI `json:"kpis"`
}

// OverallAssessment is the full evaluation of one employee for one period.
type OverallAssessment struct {
	EmployeeID      string          `json:"employeeId"`
	Period          string          `json:"period"`
	Categories      []CategoryScore `json:"categories"`
	TotalEarned     float64         `json:"totalEarned"`
	TotalPossible   float64         `json:"totalPossible"`
	OverallPercent  float64         `json:"overallPercent"`
	Rating          string          `json:"rating"`
	Recommendations []string        `json:"recommendations"`
}
