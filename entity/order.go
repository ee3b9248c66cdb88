package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	OrderStatusPending        = "pending"
	OrderStatusConfirmed      = "confirmed"
	OrderStatusPreparing      = "preparing"
	OrderStatusReady          = "ready"
	OrderStatusOutForDelivery = "out_for_delivery"
	OrderStatusDelivered      = "delivered"
	OrderStatusCancelled      = "cancelled"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

// IsOrderStatus reports enum membership. Membership is the only check a
// status edit gets; predecessor legality is not enforced.
func IsOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusOutForDelivery, OrderStatusDelivered,
		OrderStatusCancelled:
		return true
	}
	return false
}

func IsPaymentStatus(s string) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

func IsTerminalOrderStatus(s string) bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// Order is one (customer, provider) checkout group. A checkout spanning
// several providers creates several orders.
type Order struct {
	gorm.Model
	CustomerID uint `json:"customerId"`
	Customer   User `json:"-"`

	ProviderID uint            `json:"providerId"`
	Provider   ProviderProfile `json:"-"`

	OrderNumber   string `gorm:"size:20;uniqueIndex;not null" json:"orderNumber"`
	Status        string `gorm:"size:20;default:pending" json:"status"`
	PaymentStatus string `gorm:"size:20;default:pending" json:"paymentStatus"`

	DeliveryAddress string    `json:"deliveryAddress"`
	DeliveryPhone   string    `gorm:"size:17" json:"deliveryPhone"`
	DeliveryDate    time.Time `json:"deliveryDate"`
	DeliveryTime    string    `gorm:"size:5" json:"deliveryTime"` // HH:MM

	DeliveryPersonID *uint           `json:"deliveryPersonId,omitempty"`
	DeliveryPerson   *DeliveryPerson `json:"-"`

	DeliveryLocation datatypes.JSON `json:"deliveryLocation"` // {"lat": .., "lng": ..}

	ETA                *time.Time `json:"eta,omitempty"`
	ActualDeliveryTime *time.Time `json:"actualDeliveryTime,omitempty"`

	// TotalAmount = Subtotal + DeliveryCharge at creation; never recomputed
	// after items are attached.
	Subtotal       decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
	DeliveryCharge decimal.Decimal `gorm:"type:decimal(6,2)" json:"deliveryCharge"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(10,2)" json:"totalAmount"`

	SpecialInstructions string `json:"specialInstructions"`

	Items    []OrderItem       `gorm:"foreignKey:OrderID" json:"-"`
	Review   *OrderReview      `gorm:"foreignKey:OrderID" json:"-"`
	Tracking *DeliveryTracking `gorm:"foreignKey:OrderID" json:"-"`
}

// CanCancel reports whether the customer may still cancel.
func (o *Order) CanCancel() bool {
	switch o.Status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing:
		return true
	}
	return false
}
