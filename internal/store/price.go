package store

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	perrors "github.com/storely/products/internal/errors"
)

// parsePrice normalizes the string form of a price to the same comparison
// semantics as a decimal value. Callers sometimes hand over quoted values
// ("12.50"), so surrounding quotes and whitespace are stripped first. Only
// plain decimal literals are accepted.
func parsePrice(s string) (decimal.Decimal, error) {
	cleaned := strings.Trim(strings.TrimSpace(s), `"'`)
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: invalid price %q: %v", perrors.ErrDataValidation, s, err)
	}
	return d, nil
}
