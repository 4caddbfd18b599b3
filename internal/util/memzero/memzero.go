// Package memzero wipes sensitive buffers.
package memzero

import "runtime"

// Zero overwrites every given buffer with zeros. It is best-effort: copies the
// runtime made elsewhere are not reached.
//
//go:noinline
func Zero(bufs ...[]byte) {
	for _, b := range bufs {
		clear(b)
	}
	runtime.KeepAlive(bufs)
}
