// Package grocery holds the single mutable aggregate of the app: every list,
// the selected list and the user-defined categories.
//
// The Service loads itself from a domain.KVStore when constructed, runs the
// one-time migration from the legacy single-list payload, and re-saves the
// whole aggregate after every mutation. Lookup misses are silent no-ops and
// persistence failures never reach the caller; the outcome of the last save
// is available from Status.
//
// A Service is not safe for concurrent use.
package grocery
