// Package types holds the plain grocery records (categories, units, items and
// lists) together with their derived display properties and the in-memory
// mutators scoped to a single list. Nothing here knows about persistence.
package types
