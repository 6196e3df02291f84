package forms

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// messages maps field -> tag -> text. The "" tag is the field fallback.
type messages map[string]map[string]string

func (m messages) lookup(field, tag string) string {
	byTag, ok := m[field]
	if !ok {
		return "Invalid value."
	}
	if msg, ok := byTag[tag]; ok {
		return msg
	}
	if msg, ok := byTag[""]; ok {
		return msg
	}
	return "Invalid value."
}

// newValidator returns a validator that reports fields by their json names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// check validates values and converts failures into a ValidationError
// carrying the first message of every failing field.
func check(v *validator.Validate, values any, msgs messages) error {
	err := v.Struct(values)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if _, seen := fields[name]; seen {
			continue
		}
		fields[name] = msgs.lookup(name, fe.Tag())
	}
	return &ValidationError{Fields: fields}
}

func oneOf(options []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		for _, o := range options {
			if o == s {
				return true
			}
		}
		return false
	}
}

// wholeNumber accepts unsigned base-10 integers in [lo, hi].
func wholeNumber(lo, hi int) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" || s[0] == '+' || s[0] == '-' {
			return false
		}
		n, err := strconv.Atoi(s)
		return err == nil && n >= lo && n <= hi
	}
}
