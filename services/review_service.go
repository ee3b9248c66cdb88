package services

import (
	"github.com/Sandip-364710/daily-tiffin-service/entity"
	"github.com/Sandip-364710/daily-tiffin-service/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ReviewService struct {
	DB           *gorm.DB
	Repo         *repository.ReviewRepository
	TiffinRepo   *repository.TiffinRepository
	OrderRepo    *repository.OrderRepository
	ProviderRepo *repository.ProviderRepository
}

func NewReviewService(
	db *gorm.DB,
	repo *repository.ReviewRepository,
	tiffinRepo *repository.TiffinRepository,
	orderRepo *repository.OrderRepository,
	providerRepo *repository.ProviderRepository,
) *ReviewService {
	return &ReviewService{
		DB: db, Repo: repo, TiffinRepo: tiffinRepo,
		OrderRepo: orderRepo, ProviderRepo: providerRepo,
	}
}

func validRating(r int) bool { return r >= 1 && r <= 5 }

// AddItemReview writes one review per (tiffin, customer) and recomputes
// the item's stored mean rating in the same transaction. A repeat write
// is rejected and leaves the first review untouched.
func (s *ReviewService) AddItemReview(customerID, tiffinID uint, rating int, comment string) (*entity.Review, error) {
	if !validRating(rating) {
		return nil, ErrInvalidRating
	}
	if _, err := s.TiffinRepo.GetByID(tiffinID); err != nil {
		return nil, ErrNotFound
	}

	exists, err := s.Repo.ItemReviewExists(tiffinID, customerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}

	rev := &entity.Review{
		TiffinID:   tiffinID,
		CustomerID: customerID,
		Rating:     rating,
		Comment:    comment,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateItemReview(tx, rev); err != nil {
			return err
		}
		avg, err := s.Repo.MeanRatingForTiffin(tx, tiffinID)
		if err != nil {
			return err
		}
		mean := decimal.Zero
		if avg.Valid {
			mean = decimal.NewFromFloat(avg.Float64).Round(2)
		}
		return s.TiffinRepo.UpdateRating(tx, tiffinID, mean)
	})
	if err != nil {
		return nil, err
	}
	return rev, nil
}

func (s *ReviewService) ListForTiffin(tiffinID uint) ([]entity.Review, error) {
	return s.Repo.ListForTiffin(tiffinID)
}

type OrderReviewIn struct {
	FoodQualityRating int    `json:"foodQualityRating" binding:"required"`
	DeliveryRating    int    `json:"deliveryRating" binding:"required"`
	OverallRating     int    `json:"overallRating" binding:"required"`
	Comment           string `json:"comment"`
}

// AddOrderReview rates a delivered order once and recomputes the
// provider's aggregate rating from all their order reviews.
func (s *ReviewService) AddOrderReview(customerID, orderID uint, in *OrderReviewIn) (*entity.OrderReview, error) {
	if !validRating(in.FoodQualityRating) || !validRating(in.DeliveryRating) || !validRating(in.OverallRating) {
		return nil, ErrInvalidRating
	}

	order, err := s.OrderRepo.GetForCustomer(customerID, orderID)
	if err != nil {
		return nil, ErrNotFound
	}
	if order.Status != entity.OrderStatusDelivered {
		return nil, ErrNotDelivered
	}

	exists, err := s.Repo.OrderReviewExists(orderID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}

	rev := &entity.OrderReview{
		OrderID:           order.ID,
		CustomerID:        customerID,
		ProviderID:        order.ProviderID,
		FoodQualityRating: in.FoodQualityRating,
		DeliveryRating:    in.DeliveryRating,
		OverallRating:     in.OverallRating,
		Comment:           in.Comment,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrderReview(tx, rev); err != nil {
			return err
		}
		avg, err := s.Repo.MeanOverallForProvider(tx, order.ProviderID)
		if err != nil {
			return err
		}
		mean := decimal.Zero
		if avg.Valid {
			mean = decimal.NewFromFloat(avg.Float64).Round(2)
		}
		return s.ProviderRepo.UpdateRating(tx, order.ProviderID, mean)
	})
	if err != nil {
		return nil, err
	}
	return rev, nil
}

func (s *ReviewService) GetOrderReview(customerID, orderID uint) (*entity.OrderReview, error) {
	if _, err := s.OrderRepo.GetForCustomer(customerID, orderID); err != nil {
		return nil, ErrNotFound
	}
	rev, err := s.Repo.GetOrderReview(orderID)
	if err != nil {
		return nil, ErrNotFound
	}
	return rev, nil
}
