package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/idelchi/gobmo/internal/codec"
	"github.com/idelchi/gogen/pkg/validator"
)

// register adds the custom validations with human-readable error messages
// and names fields by their label tag.
func register(val *validator.Validator) error {
	validations := []struct {
		tag string
		fn  func(validator.FieldLevel) bool
		msg string
	}{
		{"exclusive", validateExclusive, "{0} is mutually exclusive"},
		{"requires", validateRequires, "{0} requires {1}"},
		{"readable", validateReadable, "{0} must be an existing file"},
		{"method", validateMethod, "{0} must be one of: " + methodNames()},
	}

	for _, v := range validations {
		if err := val.RegisterValidationAndTranslation(v.tag, v.fn, v.msg); err != nil {
			return fmt.Errorf("registering %s validation: %w", v.tag, err)
		}
	}

	val.Validator().RegisterTagNameFunc(func(fld reflect.StructField) string {
		const splitSize = 2

		name := strings.SplitN(fld.Tag.Get("label"), ",", splitSize)[0]
		if name == "" || name == "-" {
			return fld.Name
		}

		return name
	})

	return nil
}

// validateExclusive checks if two fields are mutually exclusive.
// Returns false if both fields have non-empty values.
func validateExclusive(fl validator.FieldLevel) bool {
	field := fl.Field()
	other := fl.Parent().FieldByName(fl.Param())

	if !field.IsValid() || !other.IsValid() {
		return true
	}

	return field.IsZero() || other.IsZero()
}

// validateRequires checks that a set field is accompanied by the field labelled by the param.
func validateRequires(fl validator.FieldLevel) bool {
	if fl.Field().IsZero() {
		return true
	}

	parent := fl.Parent()

	for i := range parent.NumField() {
		if parent.Type().Field(i).Tag.Get("label") == fl.Param() {
			return !parent.Field(i).IsZero()
		}
	}

	return false
}

// validateReadable accepts paths to existing regular files.
func validateReadable(fl validator.FieldLevel) bool {
	info, err := os.Stat(fl.Field().String())

	return err == nil && info.Mode().IsRegular()
}

// validateMethod accepts the names of registered cipher methods.
func validateMethod(fl validator.FieldLevel) bool {
	_, ok := codec.ParseMethod(fl.Field().String())

	return ok
}

func methodNames() string {
	methods := codec.Methods()
	names := make([]string, len(methods))

	for i, m := range methods {
		names[i] = string(m)
	}

	return strings.Join(names, ", ")
}
