// Package seed loads the loan product catalog from a YAML file.
package seed

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"credit-engine/internal/domain/metadata"
	"credit-engine/internal/domain/product"
)

// Catalog is the file layout:
//
//	products:
//	  - name: Personal Loan
//	    interest_rate: "12.5"
//	    ...
type Catalog struct {
	Products []Entry `yaml:"products"`
}

// Money fields are strings so YAML never turns them into floats.
type Entry struct {
	Name           string         `yaml:"name"`
	Description    string         `yaml:"description"`
	InterestRate   string         `yaml:"interest_rate"`
	MinAmount      string         `yaml:"min_amount"`
	MaxAmount      string         `yaml:"max_amount"`
	MinTerm        int            `yaml:"min_term"`
	MaxTerm        int            `yaml:"max_term"`
	CommissionRate string         `yaml:"commission_rate"`
	Active         *bool          `yaml:"active"`
	Requirements   map[string]any `yaml:"requirements"`
}

// Load reads and validates a catalog file.
func Load(path string) ([]*product.Product, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}
	return Parse(raw)
}

func Parse(raw []byte) ([]*product.Product, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("seed: parse catalog: %w", err)
	}
	if len(c.Products) == 0 {
		return nil, fmt.Errorf("seed: catalog has no products")
	}

	seen := make(map[string]bool, len(c.Products))
	out := make([]*product.Product, 0, len(c.Products))
	for i, e := range c.Products {
		p, err := e.toProduct()
		if err != nil {
			return nil, fmt.Errorf("seed: product #%d (%s): %w", i+1, e.Name, err)
		}
		key := strings.ToLower(p.Name)
		if seen[key] {
			return nil, fmt.Errorf("seed: duplicate product name %q", p.Name)
		}
		seen[key] = true
		out = append(out, p)
	}
	return out, nil
}

func (e Entry) toProduct() (*product.Product, error) {
	rate, err := dec("interest_rate", e.InterestRate, true)
	if err != nil {
		return nil, err
	}
	minAmt, err := dec("min_amount", e.MinAmount, true)
	if err != nil {
		return nil, err
	}
	maxAmt, err := dec("max_amount", e.MaxAmount, true)
	if err != nil {
		return nil, err
	}
	commission, err := dec("commission_rate", e.CommissionRate, false)
	if err != nil {
		return nil, err
	}

	p := &product.Product{
		Name:           strings.TrimSpace(e.Name),
		Description:    e.Description,
		InterestRate:   rate,
		MinAmount:      minAmt,
		MaxAmount:      maxAmt,
		MinTerm:        e.MinTerm,
		MaxTerm:        e.MaxTerm,
		CommissionRate: commission,
		IsActive:       e.Active == nil || *e.Active,
	}
	if len(e.Requirements) > 0 {
		p.Requirements = metadata.Map(e.Requirements)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func dec(field, v string, required bool) (decimal.Decimal, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		if required {
			return decimal.Zero, fmt.Errorf("%s is required", field)
		}
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", field, err)
	}
	return d, nil
}

// Apply creates every product whose name is not already in the active catalog
// and returns how many were created.
func Apply(ctx context.Context, repo product.Repository, products []*product.Product) (int, error) {
	existing, err := repo.ListActive(ctx)
	if err != nil {
		return 0, err
	}
	names := make(map[string]bool, len(existing))
	for _, p := range existing {
		names[strings.ToLower(p.Name)] = true
	}

	created := 0
	for _, p := range products {
		if names[strings.ToLower(p.Name)] {
			continue
		}
		if err := repo.Create(ctx, p); err != nil {
			return created, fmt.Errorf("seed: create %q: %w", p.Name, err)
		}
		created++
	}
	return created, nil
}
