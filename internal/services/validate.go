package services

import (
	"errors"
	"reflect"
	"strings"

	"ncnews/internal/apperr"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names so messages match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest turns struct validation failures into a 400. Missing fields
// are named; a present but out-of-range value is a plain bad request.
func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Tag() != "required" {
			return apperr.InvalidInput(fe.Field(), fe)
		}
		missing = append(missing, fe.Field())
	}
	return apperr.Validation("Missing required fields: " + strings.Join(missing, ", "))
}
