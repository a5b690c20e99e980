package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/playspot/booking-api/controllers"
	"github.com/playspot/booking-api/middleware"
)

// SetupTimeSlotRoutes configures all time slot related routes, including the
// bulk creation endpoint used by the admin slot builder
func SetupTimeSlotRoutes(app *fiber.App) {
	timeSlot := app.Group("/time-slots")
	timeSlot.Get("/", controllers.GetAllTimeSlots)
	timeSlot.Get("/:id", controllers.GetTimeSlot)
	timeSlot.Post("/", middleware.Protected(), middleware.RequirePermission("time-slots", "create"), controllers.CreateTimeSlot)
	timeSlot.Post("/bulk", middleware.Protected(), middleware.RequirePermission("time-slots", "create"), controllers.BulkCreateTimeSlots)
	timeSlot.Patch("/:id", middleware.Protected(), middleware.RequirePermission("time-slots", "update"), controllers.UpdateTimeSlot)
	timeSlot.Delete("/batch/:batchId", middleware.Protected(), middleware.RequirePermission("time-slots", "delete"), controllers.DeleteTimeSlotBatch)
	timeSlot.Delete("/:id", middleware.Protected(), middleware.RequirePermission("time-slots", "delete"), controllers.DeleteTimeSlot)
}
