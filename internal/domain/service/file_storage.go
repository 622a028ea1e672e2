package service

import (
	"context"
	"io"
)

// FileStorage defines the interface for storing uploaded files.
// Durability and CDN concerns live behind the implementation.
type FileStorage interface {
	// Store writes the content under a generated key and returns the
	// public URL of the stored object.
	Store(ctx context.Context, filename, contentType string, content io.Reader) (string, error)
}
