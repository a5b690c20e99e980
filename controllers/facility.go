package controllers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/playspot/booking-api/db"
	"github.com/playspot/booking-api/models"
	"github.com/playspot/booking-api/redis"
	"github.com/playspot/booking-api/utils"
)

// GetAllFacilities returns facilities for the browse pages, with optional
// sport/city filters, text search and price sorting
func GetAllFacilities(c *fiber.Ctx) error {
	// Get pagination parameters
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "12"))
	offset := (page - 1) * limit

	query := db.DB.Model(&models.Facility{}).Where("is_active = ?", true)

	if sport := c.Query("sport"); sport != "" {
		query = query.Where("sport = ?", sport)
	}
	if city := c.Query("city"); city != "" {
		query = query.Where("city = ?", city)
	}
	if q := c.Query("q"); q != "" {
		search := fmt.Sprintf("%%%s%%", q)
		query = query.Where("name ILIKE ? OR location ILIKE ?", search, search)
	}

	switch c.Query("sort") {
	case "price_asc":
		query = query.Order("price_per_hour asc")
	case "price_desc":
		query = query.Order("price_per_hour desc")
	default:
		query = query.Order("name asc")
	}

	var total int64
	query.Count(&total)

	var facilities []models.Facility
	if err := query.Limit(limit).Offset(offset).Find(&facilities).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch facilities",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"facilities": facilities,
		"meta": utils.PageMeta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (int(total) + limit - 1) / limit,
		},
	})
}

// GetFacility returns a single facility with its services, read through the
// catalog cache
func GetFacility(c *fiber.Ctx) error {
	id := c.Params("id")
	cacheKey := fmt.Sprintf("facility:%s", id)

	var facility models.Facility
	if redis.CacheGet(cacheKey, &facility) {
		return c.JSON(facility)
	}

	if err := db.DB.Preload("Services").First(&facility, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Facility not found",
			Error:   err.Error(),
		})
	}

	redis.CacheSet(cacheKey, facility)
	return c.JSON(facility)
}

// CreateFacility creates a new facility
func CreateFacility(c *fiber.Ctx) error {
	facility := new(models.Facility)
	if err := c.BodyParser(facility); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if facility.Name == "" || facility.Sport == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and sport are required",
		})
	}

	if err := db.DB.Create(facility).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create facility",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(facility)
}

// UpdateFacility updates a facility and invalidates its cache entry
func UpdateFacility(c *fiber.Ctx) error {
	id := c.Params("id")
	var facility models.Facility
	if err := db.DB.First(&facility, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Facility not found",
			Error:   err.Error(),
		})
	}
	if err := c.BodyParser(&facility); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Save(&facility).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update facility",
			Error:   err.Error(),
		})
	}

	redis.CacheDel(fmt.Sprintf("facility:%d", facility.ID))
	return c.JSON(facility)
}

// DeleteFacility deletes a facility and invalidates its cache entry
func DeleteFacility(c *fiber.Ctx) error {
	id := c.Params("id")
	var facility models.Facility
	if err := db.DB.First(&facility, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Facility not found",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Delete(&facility).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete facility",
			Error:   err.Error(),
		})
	}

	redis.CacheDel(fmt.Sprintf("facility:%d", facility.ID))
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadFacilityImage uploads a gallery image for a facility and appends the
// returned URL to its image list
func UploadFacilityImage(c *fiber.Ctx) error {
	id := c.Params("id")
	var facility models.Facility
	if err := db.DB.First(&facility, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Facility not found",
			Error:   err.Error(),
		})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Image file is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to open uploaded file",
		})
	}
	defer file.Close()

	publicID := fmt.Sprintf("facility-%s-%s", id, uuid.NewString())
	url, err := utils.UploadFacilityImage(file, publicID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload image",
			Error:   err.Error(),
		})
	}

	facility.Images = append(facility.Images, url)
	if err := db.DB.Save(&facility).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save image URL",
			Error:   err.Error(),
		})
	}

	redis.CacheDel(fmt.Sprintf("facility:%d", facility.ID))
	return c.JSON(fiber.Map{
		"url":    url,
		"images": facility.Images,
	})
}
