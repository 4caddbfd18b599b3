package interfaces

// Converter turns plain text into an encoded form and back.
//
// Decode(Encode(x)) yields x normalised to the converter's alphabet.
type Converter interface {
	Name() string
	Encode(input string) string
	Decode(input string) (string, error)
}

// Adder sums two binary operand strings.
type Adder interface {
	Add(a, b string) (string, error)
}
