// Package app wires application dependencies for the CLI.
//
// It resolves Config from flags, environment and config.yaml, opens the
// configured key-value backend and builds the grocery service on top of it,
// exposing them via Wire and App for commands to use.
package app
