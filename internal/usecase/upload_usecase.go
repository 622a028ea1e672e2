package usecase

import (
	"context"
	"io"
)

// UploadFileInput carries one multipart file to store.
type UploadFileInput struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// UploadUsecase defines the interface for storing uploaded files.
type UploadUsecase interface {
	// UploadFiles stores each file and returns its public URL, in input
	// order. The whole batch fails on the first storage error.
	UploadFiles(ctx context.Context, files []UploadFileInput) ([]string, error)
}
