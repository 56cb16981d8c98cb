package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Dataset is the on-disk product list: one array per category, matching
// the shape of data/products.json.
type Dataset map[string][]*Product

// LoadFile reads a product dataset from a JSON file. Each product's
// Category field is backfilled from its dataset key.
func LoadFile(path string) (Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var ds Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	for category, products := range ds {
		for _, p := range products {
			if p.Category == "" {
				p.Category = category
			}
		}
	}
	return ds, nil
}
