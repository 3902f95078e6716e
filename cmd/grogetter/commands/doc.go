// Package commands defines the grogetter CLI and wires dependencies for subcommands.
//
// Commands
//
//   - list      Create, rename, select and delete lists
//   - item      Add, edit, toggle, reorder and remove items
//   - category  Show and add categories
//   - share     Print a list as shareable text or markdown
//
// Lists are addressed by id or name, items by their 1-based position as
// printed by "item ls".
//
// # Implementation
//
// The root command resolves the configuration and builds the dependency graph
// (backend, logger, grocery service) before any subcommand runs, and closes it
// afterwards. Every mutation is saved immediately; a failed save is reported
// as a command error while the change is kept for the rest of the run.
package commands
