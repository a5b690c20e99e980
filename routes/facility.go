package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/playspot/booking-api/controllers"
	"github.com/playspot/booking-api/middleware"
)

// SetupFacilityRoutes configures all facility related routes
func SetupFacilityRoutes(app *fiber.App) {
	facility := app.Group("/facilities")
	facility.Get("/", controllers.GetAllFacilities)
	facility.Get("/:id", controllers.GetFacility)
	facility.Get("/:id/reviews", controllers.GetFacilityReviews)
	facility.Post("/", middleware.Protected(), middleware.RequirePermission("facilities", "create"), controllers.CreateFacility)
	facility.Patch("/:id", middleware.Protected(), middleware.RequirePermission("facilities", "update"), controllers.UpdateFacility)
	facility.Delete("/:id", middleware.Protected(), middleware.RequirePermission("facilities", "delete"), controllers.DeleteFacility)
	facility.Post("/:id/images", middleware.Protected(), middleware.RequirePermission("facilities", "update"), controllers.UploadFacilityImage)
}
