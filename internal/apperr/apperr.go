// Package apperr defines the error taxonomy shared between services and the
// HTTP layer. Services wrap these sentinels with context; handlers map them
// to status codes with errors.Is.
package apperr

import "errors"

var (
	// ErrNotFound - the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput - the request carried malformed or out-of-contract data.
	ErrInvalidInput = errors.New("invalid input")

	// ErrHolidayProvider - the holiday calendar could not be consulted. This
	// is never downgraded to an empty holiday set: a missing set would make
	// return-date calculations skip fewer days than correct.
	ErrHolidayProvider = errors.New("holiday provider failure")
)
