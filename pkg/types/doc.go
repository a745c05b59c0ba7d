// Package types holds the interfaces shared across bumv packages.
//
// Keeping the FS abstraction here avoids import cycles between the
// traversal, planning, and execution packages, all of which touch the
// filesystem only through it.
package types
