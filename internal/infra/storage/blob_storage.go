// Package storage provides a blob-backed FileStorage implementation.
// The backing bucket is selected by URL, so local disk (file://) and
// cloud object stores share the same code path.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path"
	"strings"
	"time"

	"gardenspace/config"
	"gardenspace/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // register the file:// bucket scheme
)

// blobFileStorage implements FileStorage on top of a gocloud.dev bucket.
type blobFileStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// StorageParams holds dependencies for FileStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewFileStorage opens the configured bucket and returns a FileStorage.
func NewFileStorage(params StorageParams) (service.FileStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing file storage bucket")

			return bucket.Close()
		},
	})

	params.Logger.Info("File storage initialized",
		slog.String("bucket_url", cfg.BucketURL),
	)

	return &blobFileStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Store writes the content under a generated key and returns its public URL.
func (s *blobFileStorage) Store(ctx context.Context, filename, contentType string, content io.Reader) (string, error) {
	key := buildObjectKey(filename)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(writer, content); err != nil {
		// Close discards the partial write on error.
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write object")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize object")
	}

	s.logger.Info("Stored uploaded file",
		slog.String("key", key),
		slog.String("content_type", contentType),
	)

	return s.publicURL(key), nil
}

// buildObjectKey derives a collision-free object key from the original
// filename, keeping only its extension.
func buildObjectKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))

	return fmt.Sprintf("uploads/%s/%s%s",
		time.Now().UTC().Format("2006/01/02"),
		uuid.NewString(),
		ext,
	)
}

func (s *blobFileStorage) publicURL(key string) string {
	escaped := url.PathEscape(key)
	// PathEscape also escapes the path separators inside the key.
	escaped = strings.ReplaceAll(escaped, "%2F", "/")

	return s.publicBaseURL + "/" + escaped
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewFileStorage),
)
