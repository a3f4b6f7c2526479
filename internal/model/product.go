// Package model defines the Product record and its validation rules.
package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	perrors "github.com/storely/products/internal/errors"
)

// Product is a single catalog record. ID is uuid.Nil until the record has
// been persisted; storage assigns the identifier on create and it never
// changes afterwards.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"        validate:"required,max=100"`
	Description string          `json:"description" validate:"max=500"`
	Price       decimal.Decimal `json:"price"       validate:"-"`
	Available   bool            `json:"available"`
	Category    Category        `json:"category"    validate:"required,category"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return Category(fl.Field().String()).Valid()
	})
	return v
}

// Validate checks the record against its field constraints.
// All failures are reported as ErrDataValidation.
func (p *Product) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", perrors.ErrDataValidation, err)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", perrors.ErrDataValidation)
	}
	return nil
}

// ToJSON serializes the product.
func (p *Product) ToJSON() ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize product: %w", err)
	}
	return data, nil
}

// FromJSON deserializes a product payload into p and validates it.
// Malformed input, type mismatches and out-of-set categories are all
// reported as ErrDataValidation.
func (p *Product) FromJSON(data []byte) error {
	if err := json.Unmarshal(data, p); err != nil {
		return fmt.Errorf("%w: invalid product payload: %v", perrors.ErrDataValidation, err)
	}
	return p.Validate()
}

func (p *Product) String() string {
	id := "none"
	if p.ID != uuid.Nil {
		id = p.ID.String()
	}
	return fmt.Sprintf("<Product %s id=[%s]>", p.Name, id)
}
