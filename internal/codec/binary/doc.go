// Package binary implements the lossless binary converter.
//
// Every input byte becomes an 8-digit, most-significant-bit-first token
// followed by a single space. Decoding accepts any whitespace between tokens;
// a token with characters other than '0' and '1', or whose value does not fit
// in 8 bits, is reported as a domain.DecodeError of kind InvalidToken.
package binary
