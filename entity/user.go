package entity

import (
	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleProvider = "provider"
	RoleCourier  = "courier"
	RoleAdmin    = "admin"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	Role        string `gorm:"not null;default:customer" json:"role"`
	IsVerified  bool   `json:"isVerified"`

	// preload only when needed
	ProviderProfile *ProviderProfile `gorm:"foreignKey:UserID" json:"-"`
	CourierProfile  *DeliveryPerson  `gorm:"foreignKey:UserID" json:"-"`
	Orders          []Order          `gorm:"foreignKey:CustomerID" json:"-"`
	Reviews         []Review         `gorm:"foreignKey:CustomerID" json:"-"`
}
