package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/playspot/booking-api/controllers"
	"github.com/playspot/booking-api/controllers/admin"
	"github.com/playspot/booking-api/middleware"
)

// SetupBookingRoutes configures customer booking routes and the back-office
// booking management routes
func SetupBookingRoutes(app *fiber.App) {
	booking := app.Group("/bookings", middleware.Protected())
	booking.Post("/", middleware.RequirePermission("bookings", "create"), controllers.CreateBooking)
	booking.Get("/me", controllers.GetMyBookings)
	booking.Get("/:id", controllers.GetBooking)
	booking.Post("/:id/cancel", controllers.CancelBooking)

	// Reviews ride on a completed booking
	app.Post("/reviews", middleware.Protected(), controllers.CreateReview)

	// Back-office
	adminGroup := app.Group("/admin", middleware.Protected())
	adminGroup.Get("/dashboard", admin.GetDashboardOverview)
	adminGroup.Get("/bookings", middleware.RequirePermission("bookings", "read"), controllers.GetAllBookings)
	adminGroup.Patch("/bookings/:id/status", middleware.RequirePermission("bookings", "update"), controllers.UpdateBookingStatus)
}
