package repository

import (
	"github.com/Sandip-364710/daily-tiffin-service/entity"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CourierRepository struct{ DB *gorm.DB }

func NewCourierRepository(db *gorm.DB) *CourierRepository { return &CourierRepository{DB: db} }

func (r *CourierRepository) GetByID(id uint) (*entity.DeliveryPerson, error) {
	var d entity.DeliveryPerson
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *CourierRepository) GetByUserID(userID uint) (*entity.DeliveryPerson, error) {
	var d entity.DeliveryPerson
	if err := r.DB.Where("user_id = ?", userID).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *CourierRepository) ListByProvider(providerID uint) ([]entity.DeliveryPerson, error) {
	var out []entity.DeliveryPerson
	err := r.DB.Where("provider_id = ?", providerID).
		Order("is_active DESC, created_at DESC").Find(&out).Error
	return out, err
}

func (r *CourierRepository) Create(d *entity.DeliveryPerson) error {
	return r.DB.Create(d).Error
}

func (r *CourierRepository) SetAvailability(id uint, available bool) error {
	return r.DB.Model(&entity.DeliveryPerson{}).Where("id = ?", id).
		Update("is_available", available).Error
}

// UpdateLocation overwrites the courier's last-known position in place.
func (r *CourierRepository) UpdateLocation(tx *gorm.DB, id uint, loc datatypes.JSON) error {
	return tx.Model(&entity.DeliveryPerson{}).Where("id = ?", id).
		Update("current_location", loc).Error
}

func (r *CourierRepository) IncrementTotalDeliveries(tx *gorm.DB, id uint) error {
	return tx.Model(&entity.DeliveryPerson{}).Where("id = ?", id).
		Update("total_deliveries", gorm.Expr("total_deliveries + 1")).Error
}
