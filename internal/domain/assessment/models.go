package assessment

import "time"

// Record is one stored KPI actual for an employee in a review period.
type Record struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employeeId"`
	Period      string    `json:"period"`
	Category    string    `json:"category"`
	KPI         string    `json:"kpi"`
	ActualValue float64   `json:"actualValue"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BatchItem is one row of a bulk save request.
type BatchItem struct {
	EmployeeID string  `json:"employeeId"`
	Period     string  `json:"period"`
	Category   string  `json:"category"`
	KPI        string  `json:"kpi"`
	Value      float64 `json:"value"`
	Notes      string  `json:"notes,omitempty"`
}

// BatchIssue reports why one batch row was rejected. Rejected rows do
// not block the rest of the batch.
type BatchIssue struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

type BatchResult struct {
	Saved  int          `json:"saved"`
	Issues []BatchIssue `json:"issues,omitempty"`
}

// ListFilter narrows record listings. Zero-value fields are not applied.
type ListFilter struct {
	EmployeeID string
	Period     string
	Category   string
	Limit      int
	Offset     int
}

// Snapshot is a persisted evaluation result. Payload holds the full
// assessment as JSON so reports can be rebuilt without re-evaluating.
type Snapshot struct {
	ID             string    `json:"id"`
	EmployeeID     string    `json:"employeeId"`
	Period         string    `json:"period"`
	OverallPercent float64   `json:"overallPercent"`
	Rating         string    `json:"rating"`
	Payload        []byte    `json:"payload"`
	CreatedAt      time.Time `json:"createdAt"`
}

// EvaluationIssue reports an employee that could not be evaluated
// during a bulk run.
type EvaluationIssue struct {
	EmployeeID string `json:"employeeId"`
	Reason     string `json:"reason"`
}
