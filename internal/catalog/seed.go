package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// seedFile is the on-disk layout of a seed list (see seed.yaml).
type seedFile struct {
	Products []Product `yaml:"products"`
}

// ParseSeed decodes a YAML seed list and validates every product.
func ParseSeed(data []byte) ([]Product, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: parse seed: %w", err)
	}
	seen := make(map[int]bool, len(f.Products))
	for _, p := range f.Products {
		if err := p.Validate(false); err != nil {
			return nil, fmt.Errorf("catalog: seed product %d: %w", p.ID, err)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("catalog: seed product %d: %w", p.ID, ErrDuplicateID)
		}
		seen[p.ID] = true
	}
	return f.Products, nil
}

// DefaultSeed returns the six built-in products.
func DefaultSeed() []Product {
	products, err := ParseSeed(defaultSeed)
	if err != nil {
		panic(err)
	}
	return products
}

// LoadSeed reads a seed list from path. An empty path selects the built-in list.
func LoadSeed(path string) ([]Product, error) {
	if path == "" {
		return DefaultSeed(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read seed: %w", err)
	}
	return ParseSeed(data)
}
