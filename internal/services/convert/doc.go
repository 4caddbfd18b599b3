// Package convert selects a converter variant and runs it.
//
// Variants are addressed by domain.Kind ("morse", "binary", "caesar") or by
// the shell's menu numbers 1-3. The Caesar key is supplied on every call and
// never stored with the output.
package convert
