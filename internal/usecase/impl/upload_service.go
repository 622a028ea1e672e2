package impl

import (
	"context"

	domainerrors "gardenspace/internal/domain/errors"
	"gardenspace/internal/domain/service"
	"gardenspace/internal/usecase"

	"go.uber.org/fx"
)

type uploadService struct {
	fileStorage service.FileStorage
}

// UploadServiceParams holds dependencies for UploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	FileStorage service.FileStorage
}

// NewUploadService creates a new upload service instance
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	return &uploadService{
		fileStorage: params.FileStorage,
	}
}

// UploadFiles stores each file and returns its public URL, in input order
func (s *uploadService) UploadFiles(ctx context.Context, files []usecase.UploadFileInput) ([]string, error) {
	urls := make([]string, 0, len(files))

	for _, file := range files {
		url, err := s.fileStorage.Store(ctx, file.Filename, file.ContentType, file.Content)
		if err != nil {
			return nil, domainerrors.ErrUploadFailed.WrapMessage(err.Error())
		}

		urls = append(urls, url)
	}

	return urls, nil
}
