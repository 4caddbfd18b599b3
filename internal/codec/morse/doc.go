// Package morse implements the Morse code converter.
//
// # Alphabet
//
// Table holds 36 codes: indices 0-25 are the letters A-Z and indices 26-35 are
// the digits, in the order the table lists them. Codes use only '.' and '-'.
//
// # Encoding
//
// Letters are case-folded to uppercase. Every supported character becomes its
// code followed by a single space, so "SOS" encodes to "... --- ... ".
// Characters outside the alphabet, including spaces, are dropped.
//
// # Decoding
//
// Input is split on whitespace and each token is matched exactly against the
// table. In lenient mode (the default) unknown tokens are skipped. In strict
// mode the first unknown token is reported as a domain.DecodeError of kind
// UnrecognizedToken.
package morse
