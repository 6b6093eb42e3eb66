// Package filesystem provides the file access used to load and save
// schematics.
//
// The FS interface is implemented on top of the OS for normal runs and on
// top of afero for tests and in-memory use.
package filesystem
