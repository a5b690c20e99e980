package models

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	FacilityID uint     `json:"facility_id"`
	Facility   Facility `json:"facility,omitempty" gorm:"foreignKey:FacilityID"`
	UserID     uint     `json:"user_id"`
	User       User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Rating     int      `json:"rating"` // 1 to 5
	Comment    string   `json:"comment"`
}
