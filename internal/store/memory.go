package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	perrors "github.com/storely/products/internal/errors"
	"github.com/storely/products/internal/model"
)

// memory implements ProductStore using an in-memory map. It backs unit tests
// and local wiring where a database is not available.
type memory struct {
	mu       sync.RWMutex
	products map[uuid.UUID]model.Product
}

var _ ProductStore = (*memory)(nil)

// NewMemoryStore creates a new in-memory ProductStore.
func NewMemoryStore() ProductStore {
	return &memory{products: make(map[uuid.UUID]model.Product)}
}

func (s *memory) Create(_ context.Context, p *model.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	p.ID = uuid.New()
	p.CreatedAt = now
	p.UpdatedAt = now
	s.products[p.ID] = *p
	return nil
}

func (s *memory) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, perrors.ErrProductNotFound
	}
	return &p, nil
}

func (s *memory) Update(_ context.Context, p *model.Product) error {
	if p.ID == uuid.Nil {
		return fmt.Errorf("%w: update called on product without an id", perrors.ErrDataValidation)
	}
	if err := p.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[p.ID]; !ok {
		return perrors.ErrProductNotFound
	}
	p.UpdatedAt = time.Now()
	s.products[p.ID] = *p
	return nil
}

func (s *memory) Delete(_ context.Context, p *model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.products, p.ID)
	return nil
}

func (s *memory) FindAll(_ context.Context) ([]model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		list = append(list, p)
	}
	return list, nil
}

func (s *memory) FindByName(name string) Query {
	return &memQuery{store: s, match: func(p model.Product) bool { return p.Name == name }}
}

func (s *memory) FindByAvailability(available bool) Query {
	return &memQuery{store: s, match: func(p model.Product) bool { return p.Available == available }}
}

func (s *memory) FindByCategory(category model.Category) Query {
	return &memQuery{store: s, match: func(p model.Product) bool { return p.Category == category }}
}

func (s *memory) FindByPrice(price decimal.Decimal) Query {
	// decimal equality, not struct equality: 12.5 and 12.50 must match.
	return &memQuery{store: s, match: func(p model.Product) bool { return p.Price.Equal(price) }}
}

func (s *memory) FindByPriceString(price string) (Query, error) {
	d, err := parsePrice(price)
	if err != nil {
		return nil, err
	}
	return s.FindByPrice(d), nil
}

// memQuery evaluates its predicate against current map state on every
// execution, mirroring the laziness of the SQL-backed query.
type memQuery struct {
	store *memory
	match func(model.Product) bool
}

var _ Query = (*memQuery)(nil)

func (q *memQuery) Count(ctx context.Context) (int64, error) {
	var n int64
	err := q.Each(ctx, func(model.Product) error {
		n++
		return nil
	})
	return n, err
}

func (q *memQuery) All(ctx context.Context) ([]model.Product, error) {
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

func (q *memQuery) Each(_ context.Context, fn func(model.Product) error) error {
	q.store.mu.RLock()
	defer q.store.mu.RUnlock()

	for _, p := range q.store.products {
		if !q.match(p) {
			continue
		}
		if err := fn(p); err != nil {
			return err
		}
	}
	return nil
}
