// Package store provides file-based persistence for bleprofile.
//
// The profile collection is a JSON array written indented on every save.
// Writes go to a temp file in the same directory which then replaces the
// target by rename, so readers see either the previous or the new
// collection and never a truncated file. Methods are safe for concurrent
// use within one process; concurrent writers in other processes are not
// coordinated.
package store
