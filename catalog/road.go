package catalog

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidRecord is wrapped by every record validation failure.
var ErrInvalidRecord = errors.New("catalog: invalid record")

// validate is a singleton validator instance
var validate = validator.New()

// Road is one undirected road record.
type Road struct {
	CityA    string `json:"from" yaml:"from" validate:"required"`
	CityB    string `json:"to" yaml:"to" validate:"required"`
	Distance int64  `json:"distance" yaml:"distance" validate:"min=0"`
}

// Validate checks the record's struct tags.
func (r Road) Validate() error { return validateRecord(r) }

func validateRecord(rec any) error {
	if err := validate.Struct(rec); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError reports the first failing field.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	e := validationErrs[0]
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%w: %s is required", ErrInvalidRecord, e.Field())
	case "min":
		return fmt.Errorf("%w: %s must be at least %s", ErrInvalidRecord, e.Field(), e.Param())
	default:
		return fmt.Errorf("%w: %s failed %s", ErrInvalidRecord, e.Field(), e.Tag())
	}
}
