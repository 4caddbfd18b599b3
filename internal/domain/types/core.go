package types

// Kind names a converter variant as it is selected on the command line.
type Kind string

// String returns the string form of the kind.
func (k Kind) String() string { return string(k) }

const (
	KindMorse  Kind = "morse"
	KindBinary Kind = "binary"
	KindCaesar Kind = "caesar"
)

// Kinds lists the supported variants in menu order.
func Kinds() []Kind { return []Kind{KindMorse, KindBinary, KindCaesar} }
