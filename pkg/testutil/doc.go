// Package testutil provides fixtures for testing schanno components.
//
// Key components:
//   - Part, Block, Parts: build legacy schematic text inline
//   - Workspace: an in-memory filesystem preloaded with files
//
// All test data is defined inline, not in external files, and each test
// gets its own filesystem.
package testutil
