package repository

import (
	"github.com/Sandip-364710/daily-tiffin-service/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TiffinRepository struct{ DB *gorm.DB }

func NewTiffinRepository(db *gorm.DB) *TiffinRepository { return &TiffinRepository{DB: db} }

// TiffinFilter narrows the public catalog listing.
type TiffinFilter struct {
	Search     string
	MealType   string
	Vegetarian *bool
	City       string
}

func (r *TiffinRepository) GetByID(id uint) (*entity.Tiffin, error) {
	var t entity.Tiffin
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// GetVisibleByID returns the item only if customers may see it.
func (r *TiffinRepository) GetVisibleByID(id uint) (*entity.Tiffin, error) {
	var t entity.Tiffin
	err := r.DB.Where("id = ? AND is_available = ? AND is_approved = ?", id, true, true).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TiffinRepository) ListVisible(f TiffinFilter) ([]entity.Tiffin, error) {
	q := r.DB.Model(&entity.Tiffin{}).
		Where("tiffins.is_available = ? AND tiffins.is_approved = ?", true, true)

	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Joins("JOIN provider_profiles pp ON pp.id = tiffins.provider_id").
			Joins("JOIN users pu ON pu.id = pp.user_id").
			Where(`tiffins.name LIKE ? OR tiffins.description LIKE ? OR tiffins.ingredients LIKE ?
				OR tiffins.meal_type LIKE ? OR tiffins.spice_level LIKE ?
				OR pp.business_name LIKE ? OR pu.city LIKE ?`,
				like, like, like, like, like, like, like)
	}
	if f.MealType != "" {
		q = q.Where("tiffins.meal_type = ?", f.MealType)
	}
	if f.Vegetarian != nil {
		q = q.Where("tiffins.is_vegetarian = ?", *f.Vegetarian)
	}
	if f.City != "" {
		if f.Search == "" {
			q = q.Joins("JOIN provider_profiles pp ON pp.id = tiffins.provider_id").
				Joins("JOIN users pu ON pu.id = pp.user_id")
		}
		q = q.Where("pu.city LIKE ?", "%"+f.City+"%")
	}

	var out []entity.Tiffin
	err := q.Order("tiffins.created_at DESC").Find(&out).Error
	return out, err
}

func (r *TiffinRepository) ListByProvider(providerID uint) ([]entity.Tiffin, error) {
	var out []entity.Tiffin
	err := r.DB.Where("provider_id = ?", providerID).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *TiffinRepository) ListPending() ([]entity.Tiffin, error) {
	var out []entity.Tiffin
	err := r.DB.Where("is_approved = ?", false).Order("created_at").Find(&out).Error
	return out, err
}

func (r *TiffinRepository) CountPendingByProvider(providerID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Tiffin{}).
		Where("provider_id = ? AND is_approved = ?", providerID, false).Count(&count).Error
	return count, err
}

func (r *TiffinRepository) Create(t *entity.Tiffin) error {
	return r.DB.Create(t).Error
}

func (r *TiffinRepository) Save(t *entity.Tiffin) error {
	return r.DB.Save(t).Error
}

func (r *TiffinRepository) SetAvailability(id uint, available bool) error {
	return r.DB.Model(&entity.Tiffin{}).Where("id = ?", id).
		Update("is_available", available).Error
}

func (r *TiffinRepository) Approve(id uint) error {
	return r.DB.Model(&entity.Tiffin{}).Where("id = ?", id).
		Update("is_approved", true).Error
}

func (r *TiffinRepository) UpdateRating(tx *gorm.DB, id uint, rating decimal.Decimal) error {
	return tx.Model(&entity.Tiffin{}).Where("id = ?", id).Update("rating", rating).Error
}
