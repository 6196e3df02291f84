package forms

import (
	"errors"
	"sort"
	"strings"

	"github.com/BruksfildServices01/dental-admin/internal/httperr"
)

// ErrSubmitting is returned while a previous submission of the same form is
// still pending; the submit button is disabled for that window.
var ErrSubmitting = httperr.ErrBusiness("submission_in_progress")

// ValidationError blocks a submission. Fields maps a field name to its inline
// message; Message is a form-level message for forms that report errors as a
// single notification instead.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed: " + e.Message
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

// Field returns the inline message for name, if any.
func (e *ValidationError) Field(name string) string {
	return e.Fields[name]
}

func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
