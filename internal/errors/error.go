// Package errors provides custom error types for product-related operations.
package errors

import "errors"

// ErrProductNotFound indicates that no product exists for the requested identifier.
var ErrProductNotFound = errors.New("product not found")

// ErrDataValidation indicates that product data failed validation before it
// reached storage, e.g. an update attempted without an identifier or a
// malformed payload. Raise sites wrap it with detail so callers can match
// with errors.Is.
var ErrDataValidation = errors.New("data validation error")
