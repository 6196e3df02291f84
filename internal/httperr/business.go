package httperr

import "errors"

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

var messages = map[string]string{
	"unknown_entity":         "Unknown record type.",
	"unknown_action":         "Unknown action.",
	"invalid_state":          "This action is not available for the record's current state.",
	"submission_in_progress": "A submission is already in progress.",
}

// Message is the user-facing text for the code.
func (e BusinessError) Message() string {
	if m, ok := messages[e.Code]; ok {
		return m
	}
	return "Request could not be completed."
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// AsBusiness unwraps err into a BusinessError.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
