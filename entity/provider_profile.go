package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProviderProfile struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex" json:"userId"`
	User   User `json:"-"`

	BusinessName    string          `gorm:"not null" json:"businessName"`
	Description     string          `json:"description"`
	DeliveryAreas   string          `json:"deliveryAreas"` // comma separated
	MinOrderAmount  decimal.Decimal `gorm:"type:decimal(8,2)" json:"minOrderAmount"`
	DeliveryCharge  decimal.Decimal `gorm:"type:decimal(6,2)" json:"deliveryCharge"`
	PreparationTime int             `json:"preparationTime"` // minutes
	IsActive        bool            `gorm:"default:true" json:"isActive"`
	Rating          decimal.Decimal `gorm:"type:decimal(3,2)" json:"rating"` // mean of order reviews, recomputed on write
	TotalOrders     int             `json:"totalOrders"`
	PhoneNumber     string          `json:"phoneNumber"`

	Tiffins  []Tiffin         `gorm:"foreignKey:ProviderID" json:"-"`
	Orders   []Order          `gorm:"foreignKey:ProviderID" json:"-"`
	Couriers []DeliveryPerson `gorm:"foreignKey:ProviderID" json:"-"`
}
