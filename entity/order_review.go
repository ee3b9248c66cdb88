package entity

import (
	"gorm.io/gorm"
)

// OrderReview rates a delivered order, one per (order, customer).
// Writing one recomputes the provider's aggregate rating.
type OrderReview struct {
	gorm.Model
	OrderID uint  `gorm:"uniqueIndex:idx_order_reviews_order_customer" json:"orderId"`
	Order   Order `json:"-"`

	CustomerID uint `gorm:"uniqueIndex:idx_order_reviews_order_customer" json:"customerId"`
	Customer   User `json:"-"`

	ProviderID uint            `json:"providerId"`
	Provider   ProviderProfile `json:"-"`

	FoodQualityRating int    `json:"foodQualityRating"` // 1-5
	DeliveryRating    int    `json:"deliveryRating"`    // 1-5
	OverallRating     int    `json:"overallRating"`     // 1-5
	Comment           string `json:"comment"`
}
