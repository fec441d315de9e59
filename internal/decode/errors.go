package decode

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the trimmed input is empty
	ErrEmptyInput = errors.New("empty base64 input")

	// ErrInvalidBase64 is matched by every DecodeError
	ErrInvalidBase64 = errors.New("invalid base64 input")
)

// DecodeError describes why the input is not valid base64
type DecodeError struct {
	// Offset of the offending character in the whitespace-stripped input, -1 if not applicable
	Offset int
	Reason string
}

// Error implements error
func (e *DecodeError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s: %s at offset %d", ErrInvalidBase64, e.Reason, e.Offset)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidBase64, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidBase64
func (e *DecodeError) Unwrap() error {
	return ErrInvalidBase64
}
