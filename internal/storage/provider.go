// Package storage persists the task list to a pipe-delimited text file.
package storage

// Provider is the interface for data-file operations. Paths are relative
// to the provider root.
type Provider interface {
	// Exists reports whether the file at path exists.
	Exists(path string) (bool, error)
	// Read returns the raw bytes of the file at path.
	Read(path string) ([]byte, error)
	// Write atomically replaces the file at path, creating parent directories.
	Write(path string, content []byte) error
}
