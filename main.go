package main

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/playspot/booking-api/cron"

	"github.com/playspot/booking-api/db"

	"github.com/playspot/booking-api/redis"

	"github.com/playspot/booking-api/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello, World!")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupRBACRoutes(app)
	routes.SetupFacilityRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupTimeSlotRoutes(app)
	routes.SetupBookingRoutes(app)

	cron.StartCronJobs()

	app.Listen(":8000")
	fmt.Println("Server started on port 8000")
}
