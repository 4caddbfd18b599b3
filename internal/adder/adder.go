package adder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cipherbox/internal/codec/binary"
	"cipherbox/internal/domain"
)

// Width is the operand and result width in bits.
const Width = 8

// ErrInvalidOperand is matched by every InvalidOperandError.
var ErrInvalidOperand = errors.New("binary addition not allowed for non-binary inputs")

// InvalidOperandError names the operand that failed validation.
type InvalidOperandError struct {
	Position int // 1 or 2
	Operand  string
}

func (e *InvalidOperandError) Error() string {
	return fmt.Sprintf("operand %d %q: %v", e.Position, e.Operand, ErrInvalidOperand)
}

func (e *InvalidOperandError) Unwrap() error { return ErrInvalidOperand }

// Adder implements domain.Adder.
type Adder struct{}

// New returns an Adder.
func New() *Adder { return &Adder{} }

// Add validates a and b and returns their wrapped 8-bit sum.
func (Adder) Add(a, b string) (string, error) {
	return Add(a, b)
}

// Add validates a and b and returns their wrapped 8-bit sum.
func Add(a, b string) (string, error) {
	x, err := Parse(a)
	if err != nil {
		return "", &InvalidOperandError{Position: 1, Operand: a}
	}
	y, err := Parse(b)
	if err != nil {
		return "", &InvalidOperandError{Position: 2, Operand: b}
	}
	return binary.Byte(x + y), nil
}

// Parse returns the low 8 bits of a binary digit string.
func Parse(s string) (uint8, error) {
	if s == "" || strings.Trim(s, "01") != "" {
		return 0, ErrInvalidOperand
	}
	if len(s) > Width {
		s = s[len(s)-Width:]
	}
	v, err := strconv.ParseUint(s, 2, Width)
	if err != nil {
		return 0, ErrInvalidOperand
	}
	return uint8(v), nil
}

var _ domain.Adder = Adder{}
