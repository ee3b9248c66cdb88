package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnacks    = "snacks"
)

const (
	SpiceMild   = "mild"
	SpiceMedium = "medium"
	SpiceSpicy  = "spicy"
)

func IsMealType(s string) bool {
	switch s {
	case MealBreakfast, MealLunch, MealDinner, MealSnacks:
		return true
	}
	return false
}

func IsSpiceLevel(s string) bool {
	switch s {
	case SpiceMild, SpiceMedium, SpiceSpicy:
		return true
	}
	return false
}

// Tiffin is a provider-owned menu item. Customers only see rows with
// IsAvailable && IsApproved.
type Tiffin struct {
	gorm.Model
	ProviderID uint            `json:"providerId"`
	Provider   ProviderProfile `json:"-"`

	CategoryID *uint     `json:"categoryId,omitempty"`
	Category   *Category `json:"-"`

	Name            string          `gorm:"size:200;not null" json:"name"`
	Description     string          `json:"description"`
	MealType        string          `gorm:"size:20" json:"mealType"`
	Price           decimal.Decimal `gorm:"type:decimal(8,2)" json:"price"`
	IsAvailable     bool            `gorm:"default:true" json:"isAvailable"`  // provider toggle
	IsVegetarian    bool            `gorm:"default:true" json:"isVegetarian"`
	IsApproved      bool            `gorm:"default:false" json:"isApproved"` // admin flips after moderation
	SpiceLevel      string          `gorm:"size:20;default:medium" json:"spiceLevel"`
	Ingredients     string          `json:"ingredients"`
	PreparationTime int             `json:"preparationTime"` // minutes
	Serves          int             `gorm:"default:1" json:"serves"`
	Rating          decimal.Decimal `gorm:"type:decimal(3,2)" json:"rating"` // mean of item reviews, recomputed on write

	Reviews    []Review    `gorm:"foreignKey:TiffinID" json:"-"`
	OrderItems []OrderItem `gorm:"foreignKey:TiffinID" json:"-"`
}
