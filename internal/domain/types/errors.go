package types

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognizedToken is matched by a DecodeError whose token is not in the codec table.
	ErrUnrecognizedToken = errors.New("unrecognized token")
	// ErrInvalidToken is matched by a DecodeError whose token is malformed.
	ErrInvalidToken = errors.New("invalid token")
)

// DecodeErrorKind classifies decode failures.
type DecodeErrorKind int

const (
	UnrecognizedToken DecodeErrorKind = iota + 1
	InvalidToken
)

func (k DecodeErrorKind) String() string {
	switch k {
	case UnrecognizedToken:
		return "unrecognized token"
	case InvalidToken:
		return "invalid token"
	default:
		return fmt.Sprintf("DecodeErrorKind(%d)", int(k))
	}
}

// DecodeError reports the first token a converter could not decode.
// Index is the zero-based position of the token in the whitespace-split input.
type DecodeError struct {
	Converter string
	Kind      DecodeErrorKind
	Token     string
	Index     int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s decode: %s %q at position %d", e.Converter, e.Kind, e.Token, e.Index)
}

// Is lets errors.Is match the kind sentinels.
func (e *DecodeError) Is(target error) bool {
	switch e.Kind {
	case UnrecognizedToken:
		return target == ErrUnrecognizedToken
	case InvalidToken:
		return target == ErrInvalidToken
	}
	return false
}
