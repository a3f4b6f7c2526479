// Package testutil provides test data helpers for product tests.
package testutil

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/shopspring/decimal"
	"github.com/storely/products/internal/model"
	"github.com/storely/products/internal/store"
	"golang.org/x/sync/errgroup"
)

var names = []string{
	"Hat", "Pants", "Shirt", "Apple", "Banana",
	"Pots", "Towels", "Ford", "Chevy", "Hammer", "Wrench",
}

var descriptions = []string{
	"A red hat",
	"Blue denim, slightly worn",
	"Classic white cotton",
	"Crisp and fresh",
	"Sturdy cast iron",
	"Soft and absorbent",
	"Runs like new",
	"Forged steel head",
}

// categories deliberately excludes UNKNOWN; factory products are always
// fully classified.
var categories = []model.Category{
	model.CategoryCloths,
	model.CategoryFood,
	model.CategoryHousewares,
	model.CategoryAutomotive,
	model.CategoryTools,
}

// NewProduct returns a valid, unpersisted product with randomized fields.
func NewProduct() *model.Product {
	// price between 0.50 and 2000.00, always two decimal places
	cents := rand.Int64N(199951) + 50
	return &model.Product{
		Name:        names[rand.IntN(len(names))],
		Description: descriptions[rand.IntN(len(descriptions))],
		Price:       decimal.New(cents, -2),
		Available:   rand.IntN(2) == 0,
		Category:    categories[rand.IntN(len(categories))],
	}
}

// SeedN creates n factory products through s concurrently and returns them
// with their storage-assigned identifiers.
func SeedN(ctx context.Context, s store.ProductStore, n int) ([]model.Product, error) {
	products := make([]model.Product, n)
	g, ctx := errgroup.WithContext(ctx)
	for i := range n {
		g.Go(func() error {
			p := NewProduct()
			if err := s.Create(ctx, p); err != nil {
				return fmt.Errorf("failed to seed product %d: %w", i, err)
			}
			products[i] = *p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return products, nil
}
