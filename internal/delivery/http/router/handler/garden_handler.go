package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"gardenspace/internal/delivery/http/response"
	"gardenspace/internal/domain/entity"
	"gardenspace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GardenHandlerParams holds dependencies for GardenHandler, injected by Fx.
type GardenHandlerParams struct {
	fx.In

	GardenUC usecase.GardenUsecase
	Logger   *slog.Logger
}

// GardenHandler holds dependencies for garden-related handlers
type GardenHandler struct {
	gardenUC usecase.GardenUsecase
	logger   *slog.Logger
}

// NewGardenHandler is the constructor for GardenHandler
func NewGardenHandler(params GardenHandlerParams) *GardenHandler {
	return &GardenHandler{
		gardenUC: params.GardenUC,
		logger:   params.Logger,
	}
}

// SaveGardenRequest represents the request body for creating or updating a garden
type SaveGardenRequest struct {
	Name              string   `json:"name" validate:"required"`
	Description       string   `json:"description"`
	Address           string   `json:"address"`
	Latitude          float64  `json:"latitude"`
	Longitude         float64  `json:"longitude"`
	TotalPlots        int      `json:"totalPlots"`
	AvailablePlots    int      `json:"availablePlots"`
	BasePricePerMonth float64  `json:"basePricePerMonth"`
	SizeSqm           float64  `json:"sizeSqm"`
	OwnerID           string   `json:"ownerId" validate:"required,uuid"`
	Amenities         []string `json:"amenities"`
	Images            []string `json:"images"`
}

// GardenResponse is the wire representation of a garden
type GardenResponse struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Address           string   `json:"address"`
	Latitude          float64  `json:"latitude"`
	Longitude         float64  `json:"longitude"`
	TotalPlots        int      `json:"totalPlots"`
	AvailablePlots    int      `json:"availablePlots"`
	BasePricePerMonth float64  `json:"basePricePerMonth"`
	SizeSqm           float64  `json:"sizeSqm"`
	OwnerID           string   `json:"ownerId"`
	Amenities         []string `json:"amenities"`
	Images            []string `json:"images"`
	CreatedAt         string   `json:"createdAt"`
	UpdatedAt         string   `json:"updatedAt"`
}

func toGardenResponse(garden *entity.Garden) *GardenResponse {
	return &GardenResponse{
		ID:                garden.ID.String(),
		Name:              garden.Name,
		Description:       garden.Description,
		Address:           garden.Address,
		Latitude:          garden.Latitude,
		Longitude:         garden.Longitude,
		TotalPlots:        garden.TotalPlots,
		AvailablePlots:    garden.AvailablePlots,
		BasePricePerMonth: garden.BasePricePerMonth,
		SizeSqm:           garden.SizeSqm,
		OwnerID:           garden.OwnerID.String(),
		Amenities:         garden.Amenities,
		Images:            garden.Images,
		CreatedAt:         garden.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         garden.UpdatedAt.Format(time.RFC3339),
	}
}

func toGardenResponseSlice(gardens []*entity.Garden) []*GardenResponse {
	result := make([]*GardenResponse, 0, len(gardens))
	for _, garden := range gardens {
		result = append(result, toGardenResponse(garden))
	}

	return result
}

func (req *SaveGardenRequest) toInput(ownerID uuid.UUID) usecase.SaveGardenInput {
	return usecase.SaveGardenInput{
		Name:              req.Name,
		Description:       req.Description,
		Address:           req.Address,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		TotalPlots:        req.TotalPlots,
		AvailablePlots:    req.AvailablePlots,
		BasePricePerMonth: req.BasePricePerMonth,
		SizeSqm:           req.SizeSqm,
		OwnerID:           ownerID,
		Amenities:         req.Amenities,
		Images:            req.Images,
	}
}

// ListGardens handles retrieving every garden
func (h *GardenHandler) ListGardens(c echo.Context) error {
	gardens, err := h.gardenUC.ListGardens(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toGardenResponseSlice(gardens))
}

// GetGarden handles retrieving a single garden
func (h *GardenHandler) GetGarden(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid garden ID")
	}

	garden, err := h.gardenUC.GetGarden(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toGardenResponse(garden))
}

// ListAvailableGardens handles retrieving gardens with open plots
func (h *GardenHandler) ListAvailableGardens(c echo.Context) error {
	gardens, err := h.gardenUC.ListAvailableGardens(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toGardenResponseSlice(gardens))
}

// SearchGardens handles name search
func (h *GardenHandler) SearchGardens(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return response.BadRequest(c, "MISSING_QUERY", "Query parameter q is required")
	}

	gardens, err := h.gardenUC.SearchGardens(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toGardenResponseSlice(gardens))
}

// FindNearbyGardens handles proximity search
func (h *GardenHandler) FindNearbyGardens(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATE", "Invalid latitude")
	}

	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATE", "Invalid longitude")
	}

	var radiusKm float64
	if raw := c.QueryParam("radiusKm"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_RADIUS", "Invalid radius")
		}
	}

	gardens, err := h.gardenUC.FindNearbyGardens(c.Request().Context(), usecase.NearbyGardensInput{
		Latitude:  lat,
		Longitude: lng,
		RadiusKm:  radiusKm,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toGardenResponseSlice(gardens))
}

// ListGardensByOwner handles retrieving an owner's gardens
func (h *GardenHandler) ListGardensByOwner(c echo.Context) error {
	ownerID, err := uuid.Parse(c.Param("ownerId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid owner ID")
	}

	gardens, err := h.gardenUC.ListGardensByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toGardenResponseSlice(gardens))
}

// CreateGarden handles garden creation
func (h *GardenHandler) CreateGarden(c echo.Context) error {
	var req SaveGardenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid garden input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid owner ID")
	}

	garden, err := h.gardenUC.CreateGarden(c.Request().Context(), req.toInput(ownerID))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toGardenResponse(garden))
}

// UpdateGarden handles overwriting a garden listing
func (h *GardenHandler) UpdateGarden(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid garden ID")
	}

	var req SaveGardenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid garden input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid owner ID")
	}

	garden, err := h.gardenUC.UpdateGarden(c.Request().Context(), id, req.toInput(ownerID))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toGardenResponse(garden))
}

// DeleteGarden handles hard-deleting a garden
func (h *GardenHandler) DeleteGarden(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid garden ID")
	}

	existed, err := h.gardenUC.DeleteGarden(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if !existed {
		return response.NotFound(c, "GARDEN_NOT_FOUND", "Garden not found")
	}

	return response.NoContent(c)
}
