package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/chup1x/carprice/internal/catalog"
	"github.com/chup1x/carprice/internal/domain"
	"github.com/go-playground/validator/v10"
)

// New returns a validator that knows the catalog-backed "choice" rule,
// the Levy "levy" rule and the "notfuture" year rule.
func New(cat *catalog.Catalog, now func() time.Time) *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("choice", func(fl validator.FieldLevel) bool {
		return cat.Allows(fl.FieldName(), fl.Field().String())
	})
	_ = v.RegisterValidation("levy", func(fl validator.FieldLevel) bool {
		return validLevy(fl.Field().String())
	})
	_ = v.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		return fl.Field().Int() <= int64(now().Year())
	})

	return v
}

func validLevy(s string) bool {
	s = strings.TrimSpace(s)
	if s == domain.NoLevy {
		return true
	}
	n, err := strconv.ParseFloat(s, 64)
	return err == nil && n >= 0
}

// Describe turns a validation error into one human readable sentence.
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, describeField(fe))
	}
	return "Invalid input: " + strings.Join(parts, "; ")
}

func describeField(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "notfuture":
		return fmt.Sprintf("%s cannot be in the future", fe.Field())
	case "levy":
		return fmt.Sprintf("%s must be a number or %q", fe.Field(), domain.NoLevy)
	case "choice", "oneof":
		return fmt.Sprintf("%s has an unsupported value %q", fe.Field(), fmt.Sprint(fe.Value()))
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
