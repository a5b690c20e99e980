package db

import (
	"fmt"
	"log"

	"github.com/playspot/booking-api/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.Facility{},
		&models.Service{},
		&models.TimeSlot{},
		&models.Booking{},
		&models.Review{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	seedRBAC()

	fmt.Println("✅ Migrations applied successfully!")
}

// seedRBAC creates the default roles and the permissions the route guards
// check for, then wires them together.
func seedRBAC() {
	roles := []models.Role{
		{Name: "admin", Description: "Administrator with full access"},
		{Name: "operator", Description: "Back-office staff managing facilities and slots"},
		{Name: "customer", Description: "Customer who books time slots"},
	}
	for _, role := range roles {
		var existing models.Role
		if DB.Where("name = ?", role.Name).First(&existing).RowsAffected == 0 {
			DB.Create(&role)
		}
	}

	resources := []string{"facilities", "services", "time-slots", "bookings", "roles", "permissions"}
	actions := []string{"create", "read", "update", "delete"}
	for _, resource := range resources {
		for _, action := range actions {
			name := fmt.Sprintf("%s_%s", action, resource)
			var existing models.Permission
			if DB.Where("name = ?", name).First(&existing).RowsAffected == 0 {
				DB.Create(&models.Permission{
					Name:     name,
					Resource: resource,
					Action:   action,
				})
			}
		}
	}

	// Admin gets everything
	var adminRole models.Role
	if DB.Where("name = ?", "admin").First(&adminRole).RowsAffected > 0 {
		var all []models.Permission
		DB.Find(&all)
		DB.Model(&adminRole).Association("Permissions").Replace(all)
	}

	// Operators manage the catalog and slots but not RBAC
	var operatorRole models.Role
	if DB.Where("name = ?", "operator").First(&operatorRole).RowsAffected > 0 {
		var perms []models.Permission
		DB.Where("resource IN ?", []string{"facilities", "services", "time-slots", "bookings"}).
			Find(&perms)
		DB.Model(&operatorRole).Association("Permissions").Replace(perms)
	}

	// Customers read the catalog and manage their own bookings
	var customerRole models.Role
	if DB.Where("name = ?", "customer").First(&customerRole).RowsAffected > 0 {
		var perms []models.Permission
		DB.Where("name IN ?", []string{
			"read_facilities",
			"read_services",
			"read_time-slots",
			"create_bookings",
			"read_bookings",
			"update_bookings",
		}).Find(&perms)
		DB.Model(&customerRole).Association("Permissions").Replace(perms)
	}
}
