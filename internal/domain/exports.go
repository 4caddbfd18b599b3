package domain

import (
	interfaces "cipherbox/internal/domain/interfaces"
	types "cipherbox/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Kind            = types.Kind
	HistoryRecord   = types.HistoryRecord
	Conversion      = types.Conversion
	DecodeError     = types.DecodeError
	DecodeErrorKind = types.DecodeErrorKind
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Converter         = interfaces.Converter
	Adder             = interfaces.Adder
	HistoryStore      = interfaces.HistoryStore
	ConversionService = interfaces.ConversionService
	HistoryService    = interfaces.HistoryService
)

const (
	KindMorse  = types.KindMorse
	KindBinary = types.KindBinary
	KindCaesar = types.KindCaesar

	UnrecognizedToken = types.UnrecognizedToken
	InvalidToken      = types.InvalidToken
)

var (
	ErrUnrecognizedToken = types.ErrUnrecognizedToken
	ErrInvalidToken      = types.ErrInvalidToken
)

// Kinds lists the supported converter variants in menu order.
func Kinds() []Kind { return types.Kinds() }

// NewHistoryRecord labels output with the converter name.
func NewHistoryRecord(input, output, converterName string) HistoryRecord {
	return types.NewHistoryRecord(input, output, converterName)
}
