package entity

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DeliveryTracking holds the courier's last reported position for an
// order, plus a status mirror and the stub ETA recomputed on every update.
type DeliveryTracking struct {
	gorm.Model
	OrderID uint  `gorm:"uniqueIndex" json:"orderId"`
	Order   Order `json:"-"`

	Status string `gorm:"size:20;default:pending" json:"status"`

	DeliveryPersonID *uint           `json:"deliveryPersonId,omitempty"`
	DeliveryPerson   *DeliveryPerson `json:"-"`

	CurrentLocation datatypes.JSON `json:"currentLocation"` // {"lat": .., "lng": ..}
	LastUpdated     time.Time      `json:"lastUpdated"`
}
