package repository

import (
	"github.com/Sandip-364710/daily-tiffin-service/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProviderRepository struct{ DB *gorm.DB }

func NewProviderRepository(db *gorm.DB) *ProviderRepository { return &ProviderRepository{DB: db} }

func (r *ProviderRepository) GetByID(id uint) (*entity.ProviderProfile, error) {
	var p entity.ProviderProfile
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProviderRepository) GetByUserID(userID uint) (*entity.ProviderProfile, error) {
	var p entity.ProviderProfile
	if err := r.DB.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProviderRepository) HasProfile(userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.ProviderProfile{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}

func (r *ProviderRepository) Create(p *entity.ProviderProfile) error {
	return r.DB.Create(p).Error
}

func (r *ProviderRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.ProviderProfile{}).Where("id = ?", id).Updates(updates).Error
}

func (r *ProviderRepository) GetByIDs(ids []uint) ([]entity.ProviderProfile, error) {
	var out []entity.ProviderProfile
	if len(ids) == 0 {
		return out, nil
	}
	err := r.DB.Where("id IN ?", ids).Find(&out).Error
	return out, err
}

func (r *ProviderRepository) UpdateRating(tx *gorm.DB, id uint, rating decimal.Decimal) error {
	return tx.Model(&entity.ProviderProfile{}).Where("id = ?", id).Update("rating", rating).Error
}

func (r *ProviderRepository) IncrementTotalOrders(tx *gorm.DB, id uint) error {
	return tx.Model(&entity.ProviderProfile{}).Where("id = ?", id).
		Update("total_orders", gorm.Expr("total_orders + 1")).Error
}
