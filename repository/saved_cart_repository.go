package repository

import (
	"errors"

	"github.com/Sandip-364710/daily-tiffin-service/entity"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SavedCartRepository struct{ DB *gorm.DB }

func NewSavedCartRepository(db *gorm.DB) *SavedCartRepository { return &SavedCartRepository{DB: db} }

// Get returns the durable cart mirror, or nil when the user has none.
func (r *SavedCartRepository) Get(userID uint) (datatypes.JSON, error) {
	var sc entity.SavedCart
	err := r.DB.Where("user_id = ?", userID).First(&sc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return sc.Data, nil
}

// Put upserts the mirror for the user.
func (r *SavedCartRepository) Put(userID uint, data datatypes.JSON) error {
	var sc entity.SavedCart
	err := r.DB.Where("user_id = ?", userID).First(&sc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sc = entity.SavedCart{UserID: userID, Data: data}
		return r.DB.Create(&sc).Error
	}
	if err != nil {
		return err
	}
	sc.Data = data
	return r.DB.Save(&sc).Error
}

func (r *SavedCartRepository) Clear(tx *gorm.DB, userID uint) error {
	return tx.Model(&entity.SavedCart{}).Where("user_id = ?", userID).
		Update("data", datatypes.JSON([]byte(`{}`))).Error
}
