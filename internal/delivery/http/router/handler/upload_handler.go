package handler

import (
	"log/slog"
	"net/http"

	"gardenspace/internal/delivery/http/response"
	"gardenspace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	UploadUC usecase.UploadUsecase
	Logger   *slog.Logger
}

// UploadHandler holds dependencies for file upload handlers
type UploadHandler struct {
	uploadUC usecase.UploadUsecase
	logger   *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		uploadUC: params.UploadUC,
		logger:   params.Logger,
	}
}

// UploadResponse carries the public URLs of the stored files, in input order
type UploadResponse struct {
	URLs []string `json:"urls"`
}

// UploadFiles handles a multipart file upload under the "files" form field
func (h *UploadHandler) UploadFiles(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid multipart form")
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		return response.BadRequest(c, "NO_FILES", "At least one file is required")
	}

	inputs := make([]usecase.UploadFileInput, 0, len(fileHeaders))
	opened := make([]interface{ Close() error }, 0, len(fileHeaders))
	defer func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}()

	for _, header := range fileHeaders {
		file, err := header.Open()
		if err != nil {
			return response.BadRequest(c, "INVALID_FILE", "Failed to read uploaded file")
		}
		opened = append(opened, file)

		inputs = append(inputs, usecase.UploadFileInput{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Content:     file,
		})
	}

	urls, err := h.uploadUC.UploadFiles(c.Request().Context(), inputs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, UploadResponse{URLs: urls})
}
