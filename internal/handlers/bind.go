package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/gw-converter/internal/apperrors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// bindQuery copies URL query values into the string fields of dst, keyed by
// their query tag, and validates the result.
func bindQuery(r *http.Request, dst any) error {
	q := r.URL.Query()
	v := reflect.ValueOf(dst).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get("query")
		if name == "" || v.Field(i).Kind() != reflect.String {
			continue
		}
		v.Field(i).SetString(strings.TrimSpace(q.Get(name)))
	}

	err := validate.Struct(dst)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(fe.Field(), "%s", describe(fe))
	}
	return err
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "len":
		return fmt.Sprintf("must be %s characters long", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	case "alpha":
		return "must contain letters only"
	case "numeric":
		return fmt.Sprintf("%q is not a number", fe.Value())
	case "datetime":
		return fmt.Sprintf("%q is not a valid YYYY-MM-DD date", fe.Value())
	default:
		return fmt.Sprintf("failed %s check", fe.Tag())
	}
}
