// Package adder sums binary operand strings in a fixed 8-bit domain.
//
// Operands may be any non-empty run of '0' and '1'. Only the low 8 bits of an
// operand take part in the sum, and a sum above 255 wraps with the carry
// discarded. Results are always 8 zero-padded digits.
package adder
