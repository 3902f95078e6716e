package store

// LowerScryptCost makes sealing cheap for the duration of a test.
func LowerScryptCost() (restore func()) {
	prev := defaultScryptParams
	defaultScryptParams = scryptParams{N: 1 << 10, R: 8, P: 1}
	return func() { defaultScryptParams = prev }
}
