package validators

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/red-fox-ru/techshop/app/models"
	"github.com/shopspring/decimal"
)

// ConstraintViolation reports one field outside its domain bounds.
type ConstraintViolation struct {
	Field   string      `json:"field"`
	Value   interface{} `json:"value"`
	Allowed string      `json:"allowed"`
}

// ValidationError carries every violation found in one submission, so an
// admin form can report them all at once instead of one per round trip.
type ValidationError struct {
	Violations []ConstraintViolation `json:"violations"`
}

func (e *ValidationError) Error() string {
	fields := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		fields[i] = v.Field
	}
	return fmt.Sprintf("domain constraint violations: %s", strings.Join(fields, ", "))
}

type ProductValidator struct {
	validate *validator.Validate
}

func NewProductValidator() *ProductValidator {
	return &ProductValidator{validate: validator.New()}
}

// ValidateVariant checks the variant's numeric and categorical bounds.
// Pure validation: no I/O, violations are collected, never
// short-circuited.
func (v *ProductValidator) ValidateVariant(variant models.ProductVariant) error {
	var violations []ConstraintViolation

	if err := v.validate.Struct(variant); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		for _, fieldErr := range validationErrors {
			violations = append(violations, ConstraintViolation{
				Field:   strings.ToLower(fieldErr.Field()),
				Value:   fieldErr.Value(),
				Allowed: allowedFromTag(fieldErr),
			})
		}
	}

	// decimal.Decimal is opaque to struct tags, the price bound is checked
	// by hand.
	if variant.Base().Price.LessThan(decimal.Zero) {
		violations = append(violations, ConstraintViolation{
			Field:   "price",
			Value:   variant.Base().Price.String(),
			Allowed: ">= 0",
		})
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

func allowedFromTag(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "non-empty"
	case "min":
		return ">= " + fieldErr.Param()
	case "max":
		return "<= " + fieldErr.Param()
	case "oneof":
		return "one of " + fieldErr.Param()
	case "ltefield":
		return "<= " + strings.ToLower(fieldErr.Param())
	case "len":
		return "exactly " + fieldErr.Param() + " characters"
	case "numeric":
		return "digits only"
	default:
		return fieldErr.Tag() + " " + fieldErr.Param()
	}
}
