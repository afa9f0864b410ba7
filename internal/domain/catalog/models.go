package catalog

// KPIDefinition is a single measurable indicator with a points-possible
// weight inside a category.
type KPIDefinition struct {
	Category string  `json:"category"`
	Name     string  `json:"name"`
	Weight   float64 `json:"weight"`
}

// Category groups KPI definitions under a declared share of the overall
// score. Member weights must sum to the declared weight.
type Category struct {
	Name   string          `json:"name"`
	Weight float64         `json:"weight"`
	KPIs   []KPIDefinition `json:"kpis"`
}

func (c Category) TotalWeight() float64 {
	total := 0.0
	for _, kpi := range c.KPIs {
		total += kpi.Weight
	}
	return total
}
