package caesar

import "cipherbox/internal/domain"

// Name is the label used in history records.
const Name = "Caesar Cipher"

const alphabetSize = 26

// Converter is a Caesar shift bound to a key.
type Converter struct {
	key int
}

// New returns a Converter for key, normalised into [0,26).
func New(key int) *Converter { return &Converter{key: NormalizeKey(key)} }

// Key returns the normalised shift.
func (c *Converter) Key() int { return c.key }

// Name returns "Caesar Cipher", the label used in history records.
func (c *Converter) Name() string { return Name }

// Encode shifts letters forward by the converter key, uppercasing them.
func (c *Converter) Encode(input string) string { return Encode(c.key, input) }

// Decode never fails.
func (c *Converter) Decode(input string) (string, error) { return Decode(c.key, input), nil }

// NormalizeKey maps any key into [0,26).
func NormalizeKey(key int) int {
	k := key % alphabetSize
	if k < 0 {
		k += alphabetSize
	}
	return k
}

// Encode shifts letters forward by key.
func Encode(key int, input string) string {
	return shift(input, NormalizeKey(key))
}

// Decode shifts letters backward by key.
func Decode(key int, input string) string {
	return shift(input, alphabetSize-NormalizeKey(key))
}

func shift(input string, by int) string {
	out := []byte(input)
	for i, ch := range out {
		switch {
		case ch >= 'a' && ch <= 'z':
			ch -= 'a' - 'A'
			fallthrough
		case ch >= 'A' && ch <= 'Z':
			out[i] = byte((int(ch-'A')+by)%alphabetSize) + 'A'
		}
	}
	return string(out)
}

var _ domain.Converter = (*Converter)(nil)
