// Package filesystem provides types.FS implementations.
//
// NewOS wraps the real filesystem for production use. NewAferoFS wraps
// any afero.Fs, which lets the whole rename pipeline run against
// afero's MemMapFs in tests.
package filesystem
