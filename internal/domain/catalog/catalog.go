package catalog

import (
	"fmt"
	"math"
	"strings"
)

// weightTolerance absorbs float drift when member weights are checked
// against the declared category weight (e.g. 4 x 8.75 vs 35).
const weightTolerance = 1e-9

// Catalog is the validated, read-only registry of categories and KPI
// definitions. Built once at startup; evaluations hold it for their whole
// run, so it must never be mutated after New returns.
type Catalog struct {
	categories []Category
	index      map[string]map[string]KPIDefinition
}

// New validates the given categories and builds a Catalog. Validation
// failures wrap ErrConfig and are fatal to any evaluation using the
// catalog.
func New(categories []Category) (*Catalog, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: no categories defined", ErrConfig)
	}

	index := make(map[string]map[string]KPIDefinition, len(categories))
	normalized := make([]Category, 0, len(categories))
	for _, category := range categories {
		name := strings.TrimSpace(category.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: category with empty name", ErrConfig)
		}
		if _, exists := index[name]; exists {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrConfig, name)
		}
		if len(category.KPIs) == 0 {
			return nil, fmt.Errorf("%w: category %q has no KPIs", ErrConfig, name)
		}
		if category.Weight <= 0 {
			return nil, fmt.Errorf("%w: category %q weight must be positive", ErrConfig, name)
		}

		members := make(map[string]KPIDefinition, len(category.KPIs))
		kpis := make([]KPIDefinition, 0, len(category.KPIs))
		for _, kpi := range category.KPIs {
			kpiName := strings.TrimSpace(kpi.Name)
			if kpiName == "" {
				return nil, fmt.Errorf("%w: category %q has a KPI with empty name", ErrConfig, name)
			}
			if _, exists := members[kpiName]; exists {
				return nil, fmt.Errorf("%w: duplicate KPI %q in category %q", ErrConfig, kpiName, name)
			}
			if kpi.Weight <= 0 {
				return nil, fmt.Errorf("%w: KPI %q in category %q must have positive weight", ErrConfig, kpiName, name)
			}
			def := KPIDefinition{Category: name, Name: kpiName, Weight: kpi.Weight}
			members[kpiName] = def
			kpis = append(kpis, def)
		}

		if math.Abs(category.TotalWeight()-category.Weight) > weightTolerance {
			return nil, fmt.Errorf("%w: category %q KPI weights sum to %.4f, declared weight is %.4f",
				ErrConfig, name, category.TotalWeight(), category.Weight)
		}
		index[name] = members
		normalized = append(normalized, Category{Name: name, Weight: category.Weight, KPIs: kpis})
	}

	return &Catalog{categories: normalized, index: index}, nil
}

// Categories returns the categories in declaration order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Definitions returns every KPI definition grouped by category, in
// declaration order.
func (c *Catalog) Definitions() []KPIDefinition {
	var out []KPIDefinition
	for _, category := range c.categories {
		out = append(out, category.KPIs...)
	}
	return out
}

// Lookup resolves a KPI definition by category and name.
func (c *Catalog) Lookup(category, name string) (KPIDefinition, bool) {
	members, ok := c.index[category]
	if !ok {
		return KPIDefinition{}, false
	}
	def, ok := members[name]
	return def, ok
}

// Category resolves a category by name.
func (c *Catalog) Category(name string) (Category, bool) {
	for _, category := range c.categories {
		if category.Name == name {
			return category, true
		}
	}
	return Category{}, false
}

// TotalWeight is the sum of all category weights, normally 100.
func (c *Catalog) TotalWeight() float64 {
	total := 0.0
	for _, category := range c.categories {
		total += category.Weight
	}
	return total
}
