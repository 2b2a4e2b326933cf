package domain

import (
	"errors"
	"sort"
	"strings"
)

// Domain errors.
var (
	ErrProductNotFound     = errors.New("product not found")
	ErrOfferingNotFound    = errors.New("service not found")
	ErrInvalidID           = errors.New("invalid id")
	ErrValidation          = errors.New("validation failed")
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

var errorCodes = []struct {
	err  error
	code string
}{
	{ErrProductNotFound, "product_not_found"},
	{ErrOfferingNotFound, "service_not_found"},
	{ErrInvalidID, "invalid_id"},
	{ErrValidation, "validation_failed"},
	{ErrUnsupportedLanguage, "unsupported_language"},
}

// Code returns the stable code of the first domain error found in err's
// chain, or "" when err is not a domain error.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range errorCodes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}

// ValidationError reports per-field validation failures. Fields maps a field
// name to a user-facing message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return ErrValidation.Error() + ": " + strings.Join(names, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
