package model

import (
	"fmt"
	"strings"

	perrors "github.com/storely/products/internal/errors"
)

// Category is a closed enumeration of product classifications.
type Category string

const (
	CategoryUnknown    Category = "UNKNOWN"
	CategoryCloths     Category = "CLOTHS"
	CategoryFood       Category = "FOOD"
	CategoryHousewares Category = "HOUSEWARES"
	CategoryAutomotive Category = "AUTOMOTIVE"
	CategoryTools      Category = "TOOLS"
)

// Categories returns every member of the enumeration.
func Categories() []Category {
	return []Category{
		CategoryUnknown,
		CategoryCloths,
		CategoryFood,
		CategoryHousewares,
		CategoryAutomotive,
		CategoryTools,
	}
}

// Valid reports whether c is a member of the enumeration.
func (c Category) Valid() bool {
	switch c {
	case CategoryUnknown, CategoryCloths, CategoryFood, CategoryHousewares, CategoryAutomotive, CategoryTools:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory converts a string into a Category, case-insensitively.
// Returns a data validation error for anything outside the closed set.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return CategoryUnknown, fmt.Errorf("%w: unknown category %q", perrors.ErrDataValidation, s)
	}
	return c, nil
}
