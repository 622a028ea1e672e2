// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gardenspace/internal/delivery/http/middleware"
	"gardenspace/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	BookingHandler *handler.BookingHandler
	GardenHandler  *handler.GardenHandler
	UserHandler    *handler.UserHandler
	UploadHandler  *handler.UploadHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	bookingHandler *handler.BookingHandler
	gardenHandler  *handler.GardenHandler
	userHandler    *handler.UserHandler
	uploadHandler  *handler.UploadHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		bookingHandler: params.BookingHandler,
		gardenHandler:  params.GardenHandler,
		userHandler:    params.UserHandler,
		uploadHandler:  params.UploadHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Read routes are public; booking mutations and uploads require a bearer
// token.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me)
	}

	// Booking routes
	bookingsGroup := e.Group("/bookings")
	{
		bookingsGroup.GET("", r.bookingHandler.ListBookings)
		bookingsGroup.GET("/:id", r.bookingHandler.GetBooking)
		bookingsGroup.GET("/:id/qrcode", r.bookingHandler.GetBookingQR)
		bookingsGroup.GET("/user/:userId", r.bookingHandler.ListBookingsByUser)
		bookingsGroup.GET("/garden/:gardenId", r.bookingHandler.ListBookingsByGarden)

		// Mutations require an authenticated caller
		bookingsGroup.POST("", r.bookingHandler.CreateBooking, r.authMiddleware.Authenticate)
		bookingsGroup.PATCH("/:id/confirm", r.bookingHandler.ConfirmBooking, r.authMiddleware.Authenticate)
		bookingsGroup.PATCH("/:id/cancel", r.bookingHandler.CancelBooking, r.authMiddleware.Authenticate)
		bookingsGroup.DELETE("/:id", r.bookingHandler.DeleteBooking, r.authMiddleware.Authenticate)
	}

	// Garden routes
	gardensGroup := e.Group("/gardens")
	{
		gardensGroup.GET("", r.gardenHandler.ListGardens)
		gardensGroup.GET("/available", r.gardenHandler.ListAvailableGardens)
		gardensGroup.GET("/search", r.gardenHandler.SearchGardens)
		gardensGroup.GET("/nearby", r.gardenHandler.FindNearbyGardens)
		gardensGroup.GET("/owner/:ownerId", r.gardenHandler.ListGardensByOwner)
		gardensGroup.GET("/:id", r.gardenHandler.GetGarden)

		gardensGroup.POST("", r.gardenHandler.CreateGarden, r.authMiddleware.Authenticate)
		gardensGroup.PUT("/:id", r.gardenHandler.UpdateGarden, r.authMiddleware.Authenticate)
		gardensGroup.DELETE("/:id", r.gardenHandler.DeleteGarden, r.authMiddleware.Authenticate)
	}

	// User routes
	usersGroup := e.Group("/users")
	{
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.GET("/:id/gardens", r.userHandler.ListUserGardens)

		usersGroup.PUT("/:id", r.userHandler.UpdateProfile, r.authMiddleware.Authenticate)
	}

	// File upload routes
	e.POST("/uploads", r.uploadHandler.UploadFiles, r.authMiddleware.Authenticate)
}
