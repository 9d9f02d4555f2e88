package service

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// NutritionFacts is the nutrition data recorded for one catalog label.
type NutritionFacts map[string]float64

// NutritionCatalog is the static label→facts mapping, loaded once at startup
// and read-only afterwards.
type NutritionCatalog struct {
	facts map[string]NutritionFacts
}

// LoadNutritionCatalog reads the catalog from a JSON object file.
func LoadNutritionCatalog(path string) (*NutritionCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read nutrition catalog: %w", err)
	}

	var facts map[string]NutritionFacts
	if err := json.Unmarshal(data, &facts); err != nil {
		return nil, fmt.Errorf("failed to parse nutrition catalog: %w", err)
	}

	return &NutritionCatalog{facts: facts}, nil
}

// NewNutritionCatalog builds a catalog from an in-memory mapping.
func NewNutritionCatalog(facts map[string]NutritionFacts) *NutritionCatalog {
	if facts == nil {
		facts = map[string]NutritionFacts{}
	}
	return &NutritionCatalog{facts: facts}
}

// Lookup returns the facts for a label. An unknown label resolves to an
// empty facts object, not an error.
func (c *NutritionCatalog) Lookup(label string) NutritionFacts {
	if facts, ok := c.facts[label]; ok {
		return facts
	}
	return NutritionFacts{}
}

// LoadLabelMap reads the index→name mapping from a JSON object file keyed by
// stringified indexes ("0", "1", ...) and returns the labels in index order.
func LoadLabelMap(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read label map: %w", err)
	}

	var byIndex map[string]string
	if err := json.Unmarshal(data, &byIndex); err != nil {
		return nil, fmt.Errorf("failed to parse label map: %w", err)
	}

	labels := make([]string, len(byIndex))
	for key, name := range byIndex {
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx >= len(labels) {
			return nil, fmt.Errorf("label map has non-contiguous index %q", key)
		}
		labels[idx] = name
	}

	return labels, nil
}
