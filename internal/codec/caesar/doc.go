// Package caesar implements the Caesar shift converter.
//
// Keys are normalised modulo 26, so any int is accepted. Letters are
// case-folded to uppercase and rotated within A-Z; every other byte passes
// through unchanged. The key is not embedded in the output: decoding needs the
// same key that was used to encode.
//
// The cipher offers no security.
package caesar
