package memzero

import "testing"

func TestZero(t *testing.T) {
	a := []byte("derived key")
	b := []byte{1, 2, 3}
	Zero(a, nil, b)
	for _, buf := range [][]byte{a, b} {
		for i, v := range buf {
			if v != 0 {
				t.Fatalf("byte %d = %d, want 0", i, v)
			}
		}
	}
}
