package reports

// TeamSummary aggregates the evaluated assessments of one manager's team.
type TeamSummary struct {
	ManagerID      string            `json:"managerId"`
	Period         string            `json:"period"`
	Evaluated      int               `json:"evaluated"`
	AveragePercent float64           `json:"averagePercent"`
	HighestPercent float64           `json:"highestPercent"`
	LowestPercent  float64           `json:"lowestPercent"`
	RatingCounts   map[string]int    `json:"ratingCounts"`
	Members        []MemberSummary   `json:"members"`
	WeakCategories []CategoryAverage `json:"weakCategories"`
}

type MemberSummary struct {
	EmployeeID     string  `json:"employeeId"`
	Name           string  `json:"name"`
	OverallPercent float64 `json:"overallPercent"`
	Rating         string  `json:"rating"`
}

type CategoryAverage struct {
	Category       string  `json:"category"`
	AveragePercent float64 `json:"averagePercent"`
}
