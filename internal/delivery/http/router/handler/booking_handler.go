package handler

import (
	"log/slog"
	"net/http"
	"time"

	"gardenspace/internal/delivery/http/response"
	"gardenspace/internal/domain/entity"
	"gardenspace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const dateLayout = "2006-01-02"

// BookingHandlerParams holds dependencies for BookingHandler, injected by Fx.
type BookingHandlerParams struct {
	fx.In

	BookingUC usecase.BookingUsecase
	Logger    *slog.Logger
}

// BookingHandler holds dependencies for booking-related handlers
type BookingHandler struct {
	bookingUC usecase.BookingUsecase
	logger    *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler
func NewBookingHandler(params BookingHandlerParams) *BookingHandler {
	return &BookingHandler{
		bookingUC: params.BookingUC,
		logger:    params.Logger,
	}
}

// CreateBookingRequest represents the request body for creating a booking
type CreateBookingRequest struct {
	UserID         string  `json:"userId" validate:"required,uuid"`
	GardenID       string  `json:"gardenId" validate:"required,uuid"`
	StartDate      string  `json:"startDate" validate:"required"`
	EndDate        string  `json:"endDate" validate:"required"`
	DurationMonths int     `json:"durationMonths"`
	TotalPrice     float64 `json:"totalPrice"`
}

// BookingResponse is the wire representation of a booking
type BookingResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"userId"`
	GardenID       string  `json:"gardenId"`
	StartDate      string  `json:"startDate"`
	EndDate        string  `json:"endDate"`
	DurationMonths int     `json:"durationMonths"`
	TotalPrice     float64 `json:"totalPrice"`
	Status         string  `json:"status"`
	PaymentMethod  string  `json:"paymentMethod,omitempty"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

func toBookingResponse(booking *entity.Booking) *BookingResponse {
	return &BookingResponse{
		ID:             booking.ID.String(),
		UserID:         booking.UserID.String(),
		GardenID:       booking.GardenID.String(),
		StartDate:      booking.StartDate.Format(dateLayout),
		EndDate:        booking.EndDate.Format(dateLayout),
		DurationMonths: booking.DurationMonths,
		TotalPrice:     booking.TotalPrice,
		Status:         booking.Status.String(),
		PaymentMethod:  booking.PaymentMethod,
		CreatedAt:      booking.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      booking.UpdatedAt.Format(time.RFC3339),
	}
}

func toBookingResponseSlice(bookings []*entity.Booking) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		result = append(result, toBookingResponse(booking))
	}

	return result
}

// CreateBooking handles booking creation
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	gardenID, err := uuid.Parse(req.GardenID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid garden ID")
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Invalid start date, expected YYYY-MM-DD")
	}

	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Invalid end date, expected YYYY-MM-DD")
	}

	booking, err := h.bookingUC.CreateBooking(c.Request().Context(), usecase.CreateBookingInput{
		UserID:         userID,
		GardenID:       gardenID,
		StartDate:      startDate,
		EndDate:        endDate,
		DurationMonths: req.DurationMonths,
		TotalPrice:     req.TotalPrice,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toBookingResponse(booking))
}

// GetBooking handles retrieving a single booking
func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid booking ID")
	}

	booking, err := h.bookingUC.GetBooking(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookingResponse(booking))
}

// ListBookings handles retrieving every booking
func (h *BookingHandler) ListBookings(c echo.Context) error {
	bookings, err := h.bookingUC.ListBookings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookingResponseSlice(bookings))
}

// ListBookingsByUser handles retrieving a user's bookings, optionally filtered by status
func (h *BookingHandler) ListBookingsByUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	status, ok := parseStatusFilter(c)
	if !ok {
		return response.BadRequest(c, "INVALID_BOOKING_STATUS", "Unknown booking status")
	}

	bookings, err := h.bookingUC.ListBookingsByUser(c.Request().Context(), userID, status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookingResponseSlice(bookings))
}

// ListBookingsByGarden handles retrieving a garden's bookings, optionally filtered by status
func (h *BookingHandler) ListBookingsByGarden(c echo.Context) error {
	gardenID, err := uuid.Parse(c.Param("gardenId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid garden ID")
	}

	status, ok := parseStatusFilter(c)
	if !ok {
		return response.BadRequest(c, "INVALID_BOOKING_STATUS", "Unknown booking status")
	}

	bookings, err := h.bookingUC.ListBookingsByGarden(c.Request().Context(), gardenID, status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookingResponseSlice(bookings))
}

// ConfirmBooking handles the confirm transition
func (h *BookingHandler) ConfirmBooking(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid booking ID")
	}

	paymentMethod := c.QueryParam("paymentMethod")

	booking, err := h.bookingUC.ConfirmBooking(c.Request().Context(), id, paymentMethod)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookingResponse(booking))
}

// CancelBooking handles the cancel transition
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid booking ID")
	}

	booking, err := h.bookingUC.CancelBooking(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookingResponse(booking))
}

// DeleteBooking handles hard-deleting a booking
func (h *BookingHandler) DeleteBooking(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid booking ID")
	}

	existed, err := h.bookingUC.DeleteBooking(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if !existed {
		return response.NotFound(c, "BOOKING_NOT_FOUND", "Booking not found")
	}

	return response.NoContent(c)
}

// GetBookingQR handles rendering the booking check-in QR code
func (h *BookingHandler) GetBookingQR(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid booking ID")
	}

	png, err := h.bookingUC.GenerateBookingQR(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// parseStatusFilter parses the optional ?status= query parameter. The second
// return value is false when the parameter carries a string outside the
// closed status enumeration.
func parseStatusFilter(c echo.Context) (*entity.BookingStatus, bool) {
	raw := c.QueryParam("status")
	if raw == "" {
		return nil, true
	}

	status := entity.BookingStatus(raw)
	if !status.IsValid() {
		return nil, false
	}

	return &status, true
}
