package errs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

const invalidTokenMessage = "Invalid token"

var (
	ErrInvalidToken         = errors.New(invalidTokenMessage)
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrNoActiveBooking      = errors.New("no active booking")
	ErrInvalidBookingParams = errors.New("Please select a car and dates before proceeding to booking.")
	ErrMissingDates         = errors.New("Please select pickup and return dates")
	ErrInvalidRange         = errors.New("Return date must be after pickup date")
	ErrLicenseExpiry        = errors.New("Your driving license must be valid throughout the booking period.")
	ErrEmptyCredentials     = errors.New("Please fill in all fields")
	ErrPasswordMismatch     = errors.New("Passwords don't match")
)

// APIError is a non-2xx answer of the rental backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Is reports auth rejections as ErrInvalidToken.
func (e *APIError) Is(target error) bool {
	return target == ErrInvalidToken && e.Message == invalidTokenMessage
}

type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	msgs := make([]string, 0, len(names))
	for _, name := range names {
		msgs = append(msgs, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return strings.Join(msgs, "; ")
}
