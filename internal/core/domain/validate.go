package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/samber/lo"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// validateEntity runs the struct tags of entity and folds any failure into
// ErrInvalidArgument.
func validateEntity(kind string, entity any) error {
	err := validate.Struct(entity)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := lo.Map(fieldErrs, func(fe validator.FieldError, _ int) string {
			return fe.Field()
		})
		return fmt.Errorf("%w: %s: blank %s", ErrInvalidArgument, kind, strings.Join(fields, ", "))
	}
	return fmt.Errorf("%w: %s: %v", ErrInvalidArgument, kind, err)
}
