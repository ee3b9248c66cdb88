package repository

import (
	"database/sql"

	"github.com/Sandip-364710/daily-tiffin-service/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct{ DB *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{DB: db} }

func (r *ReviewRepository) ItemReviewExists(tiffinID, customerID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Review{}).
		Where("tiffin_id = ? AND customer_id = ?", tiffinID, customerID).Count(&count).Error
	return count > 0, err
}

func (r *ReviewRepository) CreateItemReview(tx *gorm.DB, rev *entity.Review) error {
	return tx.Create(rev).Error
}

func (r *ReviewRepository) ListForTiffin(tiffinID uint) ([]entity.Review, error) {
	var out []entity.Review
	err := r.DB.Where("tiffin_id = ?", tiffinID).Order("created_at DESC").Find(&out).Error
	return out, err
}

// MeanRatingForTiffin is a full recomputation over all of the item's
// reviews, not an incremental running average.
func (r *ReviewRepository) MeanRatingForTiffin(tx *gorm.DB, tiffinID uint) (sql.NullFloat64, error) {
	var avg sql.NullFloat64
	err := tx.Model(&entity.Review{}).Where("tiffin_id = ?", tiffinID).
		Select("AVG(rating)").Scan(&avg).Error
	return avg, err
}

func (r *ReviewRepository) OrderReviewExists(orderID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.OrderReview{}).Where("order_id = ?", orderID).Count(&count).Error
	return count > 0, err
}

func (r *ReviewRepository) GetOrderReview(orderID uint) (*entity.OrderReview, error) {
	var rev entity.OrderReview
	if err := r.DB.Where("order_id = ?", orderID).First(&rev).Error; err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *ReviewRepository) CreateOrderReview(tx *gorm.DB, rev *entity.OrderReview) error {
	return tx.Create(rev).Error
}

func (r *ReviewRepository) MeanOverallForProvider(tx *gorm.DB, providerID uint) (sql.NullFloat64, error) {
	var avg sql.NullFloat64
	err := tx.Model(&entity.OrderReview{}).Where("provider_id = ?", providerID).
		Select("AVG(overall_rating)").Scan(&avg).Error
	return avg, err
}

// MeanItemRatingForProvider feeds the provider dashboard.
func (r *ReviewRepository) MeanItemRatingForProvider(providerID uint) (sql.NullFloat64, error) {
	var avg sql.NullFloat64
	err := r.DB.Model(&entity.Review{}).
		Joins("JOIN tiffins ON tiffins.id = reviews.tiffin_id").
		Where("tiffins.provider_id = ?", providerID).
		Select("AVG(reviews.rating)").Scan(&avg).Error
	return avg, err
}
