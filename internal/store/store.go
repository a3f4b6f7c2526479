// Package store provides the data-access contract for product records.
package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storely/products/internal/model"
)

// ProductStore is the contract for product persistence.
// It abstracts the underlying data store, allowing for different implementations (e.g. in-memory, PostgreSQL).
type ProductStore interface {
	// Create persists a new record and assigns its storage-generated
	// identifier (and timestamps) back onto p.
	Create(ctx context.Context, p *model.Product) error

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// Update persists field changes for an existing record.
	// Returns ErrDataValidation, without touching storage, when p has no
	// identifier; ErrProductNotFound when the identifier no longer resolves.
	Update(ctx context.Context, p *model.Product) error

	// Delete removes the record matching p's identifier.
	// Deleting a record that is already absent is not an error.
	Delete(ctx context.Context, p *model.Product) error

	// FindAll returns every record, order unspecified.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]model.Product, error)

	// FindByName returns a query matching products with exactly this name.
	FindByName(name string) Query

	// FindByAvailability returns a query matching products by availability.
	FindByAvailability(available bool) Query

	// FindByCategory returns a query matching products in the given category.
	FindByCategory(category model.Category) Query

	// FindByPrice returns a query matching products whose price is
	// decimal-equal to the given value.
	FindByPrice(price decimal.Decimal) Query

	// FindByPriceString is FindByPrice for a decimal-literal string.
	// Surrounding whitespace and quotes are tolerated; anything that does
	// not parse as a plain decimal is an ErrDataValidation.
	FindByPriceString(price string) (Query, error)
}

// Query is a lazy filter result. It holds only the predicate: Count and All
// each execute independently against current storage state, and Each streams
// matches without materializing the whole set. A Query may be executed any
// number of times.
type Query interface {
	// Count returns the number of matching records.
	Count(ctx context.Context) (int64, error)

	// All materializes every matching record.
	All(ctx context.Context) ([]model.Product, error)

	// Each invokes fn for every matching record, stopping at the first error.
	Each(ctx context.Context, fn func(model.Product) error) error
}
