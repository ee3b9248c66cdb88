package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem snapshots quantity and unit price at order time. Price is
// intentionally decoupled from the live Tiffin row.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	TiffinID uint   `json:"tiffinId"`
	Tiffin   Tiffin `json:"-"`

	Quantity int             `gorm:"default:1" json:"quantity"`
	Price    decimal.Decimal `gorm:"type:decimal(8,2)" json:"price"`
}

func (i *OrderItem) TotalPrice() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
