package suid

import (
	"errors"
	"fmt"

	"classmeta/internal/diagnostic"
)

var (
	// ErrDigestUnavailable is returned when SHA-1 is not linked into the binary.
	ErrDigestUnavailable = errors.New("SHA-1 digest unavailable")
	// ErrInvalidModel is wrapped by every ModelError.
	ErrInvalidModel = errors.New("invalid class model")
)

// CodeStringTooLong is reported when a name or descriptor does not fit the
// 2-byte length prefix of the canonical stream.
const CodeStringTooLong = "string_too_long"

// ModelError reports a class model that cannot be hashed.
type ModelError struct {
	Class       string
	Diagnostics diagnostic.Diagnostics
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("invalid class model %q: %v", e.Class, e.Diagnostics.Err())
}

func (e *ModelError) Unwrap() error {
	return ErrInvalidModel
}
