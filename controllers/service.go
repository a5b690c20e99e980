package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/playspot/booking-api/db"
	"github.com/playspot/booking-api/models"
	"github.com/playspot/booking-api/redis"
	"github.com/playspot/booking-api/utils"
)

// GetAllServices returns all services, optionally filtered to one facility.
// The per-facility list is what the bulk slot builder reads, so it goes
// through the catalog cache.
func GetAllServices(c *fiber.Ctx) error {
	facilityID := c.Query("facility_id")

	if facilityID != "" {
		cacheKey := fmt.Sprintf("service:facility:%s", facilityID)
		var services []models.Service
		if redis.CacheGet(cacheKey, &services) {
			return c.JSON(services)
		}
		if err := db.DB.Where("facility_id = ?", facilityID).Find(&services).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		redis.CacheSet(cacheKey, services)
		return c.JSON(services)
	}

	var services []models.Service
	if err := db.DB.Preload("Facility").Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(services)
}

// GetService returns a single service
func GetService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if err := db.DB.Preload("Facility").First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}
	return c.JSON(service)
}

// CreateService creates a new service under a facility
func CreateService(c *fiber.Ctx) error {
	service := new(models.Service)
	if err := c.BodyParser(service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if service.FacilityID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "facility_id is required",
		})
	}
	if service.Duration <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "duration must be a positive number of minutes",
		})
	}

	var facility models.Facility
	if db.DB.First(&facility, service.FacilityID).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Facility not found",
		})
	}

	if err := db.DB.Create(service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create service",
			Error:   err.Error(),
		})
	}

	redis.CacheDel(
		fmt.Sprintf("service:facility:%d", service.FacilityID),
		fmt.Sprintf("facility:%d", service.FacilityID),
	)
	return c.Status(fiber.StatusCreated).JSON(service)
}

// UpdateService updates a service
func UpdateService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if err := db.DB.First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}
	if err := c.BodyParser(&service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if service.Duration <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "duration must be a positive number of minutes",
		})
	}
	if err := db.DB.Save(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update service",
			Error:   err.Error(),
		})
	}

	redis.CacheDel(
		fmt.Sprintf("service:facility:%d", service.FacilityID),
		fmt.Sprintf("facility:%d", service.FacilityID),
	)
	return c.JSON(service)
}

// DeleteService deletes a service
func DeleteService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if db.DB.First(&service, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}
	if err := db.DB.Delete(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete service",
			Error:   err.Error(),
		})
	}

	redis.CacheDel(
		fmt.Sprintf("service:facility:%d", service.FacilityID),
		fmt.Sprintf("facility:%d", service.FacilityID),
	)
	return c.SendStatus(fiber.StatusNoContent)
}
