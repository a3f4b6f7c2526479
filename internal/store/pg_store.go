package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	perrors "github.com/storely/products/internal/errors"
	"github.com/storely/products/internal/model"
)

// Price crosses the wire as text with explicit numeric casts so that
// comparison stays exact; there is no decimal codec registered on the pool.
const productColumns = "id, name, description, price::text, available, category, created_at, updated_at"

// PgStore implements ProductStore using PostgreSQL as the data store.
type PgStore struct {
	db *pgxpool.Pool
}

var _ ProductStore = (*PgStore)(nil)

// NewPgStore creates a new instance of ProductStore using a PostgreSQL connection pool.
func NewPgStore(db *pgxpool.Pool) *PgStore {
	return &PgStore{db: db}
}

// Create persists p as a new record. The identifier and timestamps come back
// from storage; any identifier already set on p is ignored.
func (s *PgStore) Create(ctx context.Context, p *model.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	row := s.db.QueryRow(ctx,
		`INSERT INTO products (name, description, price, available, category)
		 VALUES ($1, $2, $3::numeric, $4, $5)
		 RETURNING id, created_at, updated_at`,
		p.Name, p.Description, p.Price.String(), p.Available, string(p.Category),
	)
	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// FindByID retrieves a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *PgStore) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	row := s.db.QueryRow(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = $1", id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return p, nil
}

// Update persists field changes for the record matching p's identifier.
func (s *PgStore) Update(ctx context.Context, p *model.Product) error {
	if p.ID == uuid.Nil {
		return fmt.Errorf("%w: update called on product without an id", perrors.ErrDataValidation)
	}
	if err := p.Validate(); err != nil {
		return err
	}
	row := s.db.QueryRow(ctx,
		`UPDATE products
		 SET name = $2, description = $3, price = $4::numeric, available = $5, category = $6, updated_at = now()
		 WHERE id = $1
		 RETURNING updated_at`,
		p.ID, p.Name, p.Description, p.Price.String(), p.Available, string(p.Category),
	)
	if err := row.Scan(&p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return perrors.ErrProductNotFound
		}
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

// Delete removes the record matching p's identifier. Deleting an absent
// record is a no-op.
func (s *PgStore) Delete(ctx context.Context, p *model.Product) error {
	if p.ID == uuid.Nil {
		return nil
	}
	if _, err := s.db.Exec(ctx, "DELETE FROM products WHERE id = $1", p.ID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// FindAll retrieves every product, order unspecified.
func (s *PgStore) FindAll(ctx context.Context) ([]model.Product, error) {
	return (&pgQuery{db: s.db}).All(ctx)
}

// FindByName returns a query for products with exactly the given name.
func (s *PgStore) FindByName(name string) Query {
	return &pgQuery{db: s.db, where: "name = $1", args: []any{name}}
}

// FindByAvailability returns a query for products with the given availability.
func (s *PgStore) FindByAvailability(available bool) Query {
	return &pgQuery{db: s.db, where: "available = $1", args: []any{available}}
}

// FindByCategory returns a query for products in the given category.
func (s *PgStore) FindByCategory(category model.Category) Query {
	return &pgQuery{db: s.db, where: "category = $1", args: []any{string(category)}}
}

// FindByPrice returns a query for products whose price equals the given value.
func (s *PgStore) FindByPrice(price decimal.Decimal) Query {
	return &pgQuery{db: s.db, where: "price = $1::numeric", args: []any{price.String()}}
}

// FindByPriceString is FindByPrice for a decimal-literal string.
func (s *PgStore) FindByPriceString(price string) (Query, error) {
	d, err := parsePrice(price)
	if err != nil {
		return nil, err
	}
	return s.FindByPrice(d), nil
}

// scanProduct reads one product row. The row must select productColumns.
func scanProduct(row pgx.Row) (*model.Product, error) {
	var (
		p         model.Product
		priceText string
		category  string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &priceText, &p.Available, &category, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	price, err := decimal.NewFromString(priceText)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q in storage: %w", priceText, err)
	}
	p.Price = price
	p.Category = model.Category(category)
	return &p, nil
}

// pgQuery is the PostgreSQL Query implementation. It holds the predicate
// only; every execution hits current table state.
type pgQuery struct {
	db    *pgxpool.Pool
	where string
	args  []any
}

var _ Query = (*pgQuery)(nil)

func (q *pgQuery) suffix() string {
	if q.where == "" {
		return ""
	}
	return " WHERE " + q.where
}

// Count returns the number of matching records.
func (q *pgQuery) Count(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRow(ctx, "SELECT count(*) FROM products"+q.suffix(), q.args...).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return n, nil
}

// All materializes every matching record.
func (q *pgQuery) All(ctx context.Context) ([]model.Product, error) {
	products := make([]model.Product, 0)
	err := q.Each(ctx, func(p model.Product) error {
		products = append(products, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

// Each streams matching records through fn without materializing the set.
func (q *pgQuery) Each(ctx context.Context, fn func(model.Product) error) error {
	rows, err := q.db.Query(ctx, "SELECT "+productColumns+" FROM products"+q.suffix(), q.args...)
	if err != nil {
		return fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return fmt.Errorf("failed to scan product: %w", err)
		}
		if err := fn(*p); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate products: %w", err)
	}
	return nil
}
