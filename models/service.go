package models

import (
	"gorm.io/gorm"
)

type Service struct {
	gorm.Model
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Duration        int      `json:"duration"` // Fixed slot length in minutes
	Price           float64  `json:"price"`
	Discount        float64  `json:"discount"` // Discount percentage
	DiscountedPrice float64  `json:"discounted_price" gorm:"-"`
	FacilityID      uint     `json:"facility_id"`
	Facility        Facility `json:"facility,omitempty" gorm:"foreignKey:FacilityID"`
	IsActive        bool     `json:"is_active" gorm:"default:true"`
}

func (s *Service) AfterFind(tx *gorm.DB) (err error) {
	s.DiscountedPrice = s.Price - (s.Price * s.Discount / 100)
	return
}
