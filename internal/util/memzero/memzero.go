// Package memzero clears key material held in byte slices.
package memzero

import "runtime"

// Zero overwrites every byte of each buffer. Nil and empty buffers are skipped.
func Zero(bufs ...[]byte) {
	for _, b := range bufs {
		clear(b)
		runtime.KeepAlive(b)
	}
}
