package catalog

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type fileCategory struct {
	Name   string    `koanf:"name"`
	Weight float64   `koanf:"weight"`
	KPIs   []fileKPI `koanf:"kpis"`
}

type fileKPI struct {
	Name   string  `koanf:"name"`
	Weight float64 `koanf:"weight"`
}

// Load builds a Catalog from a YAML file:
//
//	categories:
//	  - name: Performance & Delivery
//	    weight: 35
//	    kpis:
//	      - name: Task Completion Rate
//	        weight: 8.75
//
// An empty path returns the built-in default catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrConfig, path, err)
	}

	var parsed struct {
		Categories []fileCategory `koanf:"categories"`
	}
	if err := k.UnmarshalWithConf("", &parsed, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrConfig, path, err)
	}

	categories := make([]Category, 0, len(parsed.Categories))
	for _, category := range parsed.Categories {
		kpis := make([]KPIDefinition, 0, len(category.KPIs))
		for _, kpi := range category.KPIs {
			kpis = append(kpis, KPIDefinition{Category: category.Name, Name: kpi.Name, Weight: kpi.Weight})
		}
		categories = append(categories, Category{Name: category.Name, Weight: category.Weight, KPIs: kpis})
	}
	return New(categories)
}
