package models

import (
	"errors"
	"reflect"
	"strings"

	"marketplace/internal/marketerrors"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// validateRecord runs the struct rules of rec and converts failures to a *marketerrors.ValidationError
func validateRecord(entity string, rec any) error {
	err := validate.Struct(rec)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]marketerrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, marketerrors.FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return &marketerrors.ValidationError{Entity: entity, Fields: fields}
}

// RequireIdentity rejects updates that do not name the record they replace
func RequireIdentity(entity string, e Entity) error {
	if e.Identity() > 0 {
		return nil
	}
	return &marketerrors.ValidationError{
		Entity: entity,
		Fields: []marketerrors.FieldError{{Field: "id", Rule: "required"}},
	}
}
