package uuidx

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength indicates that the UUID byte slice has incorrect length
	ErrInvalidLength = errors.New("uuidx: invalid UUID length (expected 16 bytes)")

	// ErrLength indicates that a UUID string does not hold exactly 32 hex digits
	ErrLength = errors.New("uuidx: invalid UUID string length")

	// ErrInvalidChar indicates that a UUID string holds a character that is not a hex digit
	ErrInvalidChar = errors.New("uuidx: invalid character in UUID string")

	// ErrBadFormat indicates that hyphens or decorations are not where the accepted forms put them
	ErrBadFormat = errors.New("uuidx: invalid UUID format")

	// ErrRandomSource indicates that the random source could not supply entropy
	ErrRandomSource = errors.New("uuidx: random source failure")

	// ErrTimeOutOfRange indicates a time that the UUID timestamp field cannot represent
	ErrTimeOutOfRange = errors.New("uuidx: time out of range for UUID timestamp")
)

// ParseErrorKind classifies a malformed UUID string
type ParseErrorKind uint8

const (
	ErrKindLength ParseErrorKind = iota + 1
	ErrKindInvalidChar
	ErrKindBadFormat
)

func (k ParseErrorKind) sentinel() error {
	switch k {
	case ErrKindLength:
		return ErrLength
	case ErrKindInvalidChar:
		return ErrInvalidChar
	default:
		return ErrBadFormat
	}
}

// ParseError is returned by the Parse family.
// Offset is the byte offset of the offending character for ErrKindInvalidChar
// and -1 otherwise.
type ParseError struct {
	Kind   ParseErrorKind
	Input  string
	Offset int
}

func (e *ParseError) Error() string {
	if e.Kind == ErrKindInvalidChar {
		return fmt.Sprintf("%v at offset %d: %q", e.Kind.sentinel(), e.Offset, e.Input)
	}
	return fmt.Sprintf("%v: %q", e.Kind.sentinel(), e.Input)
}

// Unwrap allows errors.Is(err, ErrLength) and friends
func (e *ParseError) Unwrap() error {
	return e.Kind.sentinel()
}

// RandomSourceError wraps the error returned by a failing random source
type RandomSourceError struct {
	Err error
}

func (e *RandomSourceError) Error() string {
	return fmt.Sprintf("%v: %v", ErrRandomSource, e.Err)
}

// Is reports ErrRandomSource as a match
func (e *RandomSourceError) Is(target error) bool {
	return target == ErrRandomSource
}

func (e *RandomSourceError) Unwrap() error {
	return e.Err
}
