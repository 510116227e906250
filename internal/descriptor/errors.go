package descriptor

import (
	"errors"
	"fmt"
)

// ErrSyntax is wrapped by every error reporting malformed descriptor or
// signature text.
var ErrSyntax = errors.New("descriptor syntax error")

// SyntaxError describes where a descriptor failed to parse.
type SyntaxError struct {
	Input  string // the full text being decoded
	Offset int    // byte offset of the offending character
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid descriptor %q at offset %d: %s", e.Input, e.Offset, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

func syntaxError(input string, offset int, format string, args ...any) error {
	return &SyntaxError{Input: input, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}
