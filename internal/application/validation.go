package application

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"krushi/internal/domain"
	"krushi/internal/ports/output"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkStruct validates cmd and renders failures as a *domain.ValidationError
// whose messages come from the "validation_<tag>" API messages.
func checkStruct(v *validator.Validate, t output.T, locale string, cmd any) error {
	err := v.Struct(cmd)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = t.T(locale, "validation_"+fe.Tag(), map[string]any{
			"Field": fe.Field(),
			"Param": fe.Param(),
		})
	}
	return &domain.ValidationError{Fields: fields}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
