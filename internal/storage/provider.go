// Package storage defines the journals file-system abstraction.
package storage

import "github.com/starford/dagaz/internal/models"

// Provider is the interface for journal file operations.
type Provider interface {
	// List returns metadata for every .txt file under dir (relative to the journals root).
	List(dir string) ([]models.JournalMetadata, error)
	// Read returns the raw bytes of the file at path (relative to the journals root).
	Read(path string) ([]byte, error)
	// Write atomically writes content to path (relative to the journals root).
	Write(path string, content []byte) error
	// Delete removes the file at path (relative to the journals root).
	Delete(path string) error
	// Move renames oldPath to newPath (both relative to the journals root).
	Move(oldPath, newPath string) error
}
