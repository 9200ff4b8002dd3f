package httperr

import (
	"errors"
	"strings"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
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

// ValidationError junta todos los mensajes de validación de un request
// para devolverlos de una sola vez, sin escrituras parciales.
type ValidationError struct {
	Messages []string
}

func (e ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func ErrValidation(messages []string) error {
	return ValidationError{Messages: messages}
}

func AsValidation(err error) (ValidationError, bool) {
	var ve ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
