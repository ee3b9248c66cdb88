package repository

import (
	"errors"

	"github.com/Sandip-364710/daily-tiffin-service/entity"

	"gorm.io/gorm"
)

type TrackingRepository struct{ DB *gorm.DB }

func NewTrackingRepository(db *gorm.DB) *TrackingRepository { return &TrackingRepository{DB: db} }

// GetOrCreate returns the tracking row for an order, creating it lazily
// with the order's current status and courier.
func (r *TrackingRepository) GetOrCreate(tx *gorm.DB, o *entity.Order) (*entity.DeliveryTracking, error) {
	var t entity.DeliveryTracking
	err := tx.Where("order_id = ?", o.ID).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		t = entity.DeliveryTracking{
			OrderID:          o.ID,
			Status:           o.Status,
			DeliveryPersonID: o.DeliveryPersonID,
		}
		if err := tx.Create(&t).Error; err != nil {
			return nil, err
		}
		return &t, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TrackingRepository) Save(tx *gorm.DB, t *entity.DeliveryTracking) error {
	return tx.Save(t).Error
}

func (r *TrackingRepository) UpdateStatus(tx *gorm.DB, orderID uint, status string) error {
	return tx.Model(&entity.DeliveryTracking{}).Where("order_id = ?", orderID).
		Update("status", status).Error
}
