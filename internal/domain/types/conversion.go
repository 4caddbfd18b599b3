package types

// Conversion is the outcome of running a converter over one input.
type Conversion struct {
	Converter string
	Input     string
	Output    string
}
