package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DeliveryPerson struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex" json:"userId"`
	User   User `json:"-"`

	ProviderID uint            `json:"providerId"`
	Provider   ProviderProfile `json:"-"`

	PhoneNumber string `json:"phoneNumber"`
	IsAvailable bool   `gorm:"default:true" json:"isAvailable"`

	// {"lat": .., "lng": ..}; no history, overwritten in place
	CurrentLocation datatypes.JSON `json:"currentLocation"`

	VehicleNumber   string          `json:"vehicleNumber"`
	VehicleType     string          `json:"vehicleType"` // e.g. Bike, Scooter
	IsActive        bool            `gorm:"default:true" json:"isActive"`
	Rating          decimal.Decimal `gorm:"type:decimal(3,2)" json:"rating"`
	TotalDeliveries int             `json:"totalDeliveries"`

	AssignedOrders []Order `gorm:"foreignKey:DeliveryPersonID" json:"-"`
}
