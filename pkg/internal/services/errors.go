package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// Error carries a client facing message and the kind it belongs to.
// errors.Is(err, ErrConflict) and friends match on the kind.
type Error struct {
	Kind    error
	Message string
}

func (v *Error) Error() string {
	return v.Message
}

func (v *Error) Unwrap() error {
	return v.Kind
}

func newError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// wrapQueryError turns a missing record into ErrNotFound and keeps other
// database failures as internal errors.
func wrapQueryError(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return newError(ErrNotFound, "%s was not found", entity)
	}
	return fmt.Errorf("unable to get %s: %v", entity, err)
}
