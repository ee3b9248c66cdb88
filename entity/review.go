package entity

import (
	"gorm.io/gorm"
)

// Review is an item-level rating, one per (tiffin, customer).
type Review struct {
	gorm.Model
	TiffinID uint   `gorm:"uniqueIndex:idx_reviews_tiffin_customer" json:"tiffinId"`
	Tiffin   Tiffin `json:"-"`

	CustomerID uint `gorm:"uniqueIndex:idx_reviews_tiffin_customer" json:"customerId"`
	Customer   User `json:"-"`

	Rating  int    `json:"rating"` // 1-5
	Comment string `json:"comment"`
}
