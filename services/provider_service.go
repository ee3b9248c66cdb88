package services

import (
	"strings"

	"github.com/Sandip-364710/daily-tiffin-service/entity"
	"github.com/Sandip-364710/daily-tiffin-service/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type ProviderService struct {
	Repo        *repository.ProviderRepository
	UserRepo    *repository.UserRepository
	CourierRepo *repository.CourierRepository
	TiffinRepo  *repository.TiffinRepository
	OrderRepo   *repository.OrderRepository
	ReviewRepo  *repository.ReviewRepository
}

func NewProviderService(
	repo *repository.ProviderRepository,
	userRepo *repository.UserRepository,
	courierRepo *repository.CourierRepository,
	tiffinRepo *repository.TiffinRepository,
	orderRepo *repository.OrderRepository,
	reviewRepo *repository.ReviewRepository,
) *ProviderService {
	return &ProviderService{
		Repo: repo, UserRepo: userRepo, CourierRepo: courierRepo,
		TiffinRepo: tiffinRepo, OrderRepo: orderRepo, ReviewRepo: reviewRepo,
	}
}

type ProviderProfileIn struct {
	BusinessName    string          `json:"businessName" binding:"required"`
	Description     string          `json:"description"`
	DeliveryAreas   string          `json:"deliveryAreas"`
	MinOrderAmount  decimal.Decimal `json:"minOrderAmount"`
	DeliveryCharge  decimal.Decimal `json:"deliveryCharge"`
	PreparationTime int             `json:"preparationTime"`
	PhoneNumber     string          `json:"phoneNumber"`
}

// CreateProfile makes the provider's business profile; one per account.
func (s *ProviderService) CreateProfile(userID uint, in *ProviderProfileIn) (*entity.ProviderProfile, error) {
	exists, err := s.Repo.HasProfile(userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrProfileExists
	}

	p := &entity.ProviderProfile{
		UserID:          userID,
		BusinessName:    strings.TrimSpace(in.BusinessName),
		Description:     in.Description,
		DeliveryAreas:   in.DeliveryAreas,
		MinOrderAmount:  in.MinOrderAmount,
		DeliveryCharge:  in.DeliveryCharge,
		PreparationTime: in.PreparationTime,
		IsActive:        true,
		PhoneNumber:     in.PhoneNumber,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProviderService) GetProfile(userID uint) (*entity.ProviderProfile, error) {
	p, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *ProviderService) UpdateProfile(userID uint, updates map[string]any) (*entity.ProviderProfile, error) {
	p, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	if err := s.Repo.Update(p.ID, updates); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(p.ID)
}

type ProviderDashboard struct {
	Profile       *entity.ProviderProfile `json:"profile"`
	TotalOrders   int64                   `json:"totalOrders"`
	MenuItems     int64                   `json:"menuItems"`
	PendingItems  int64                   `json:"pendingItems"`
	AvgItemRating float64                 `json:"avgItemRating"`
}

func (s *ProviderService) Dashboard(userID uint) (*ProviderDashboard, error) {
	p, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, ErrNotFound
	}

	orders, err := s.OrderRepo.CountForProvider(p.ID)
	if err != nil {
		return nil, err
	}
	items, err := s.TiffinRepo.ListByProvider(p.ID)
	if err != nil {
		return nil, err
	}
	pending, err := s.TiffinRepo.CountPendingByProvider(p.ID)
	if err != nil {
		return nil, err
	}
	avg, err := s.ReviewRepo.MeanItemRatingForProvider(p.ID)
	if err != nil {
		return nil, err
	}

	d := &ProviderDashboard{
		Profile:      p,
		TotalOrders:  orders,
		MenuItems:    int64(len(items)),
		PendingItems: pending,
	}
	if avg.Valid {
		d.AvgItemRating = avg.Float64
	}
	return d, nil
}

type CourierIn struct {
	Email         string `json:"email" binding:"required"`
	Password      string `json:"password" binding:"required"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	PhoneNumber   string `json:"phoneNumber"`
	VehicleNumber string `json:"vehicleNumber"`
	VehicleType   string `json:"vehicleType"`
}

// RegisterCourier creates a courier account under the provider's fleet.
// The courier logs in with the credentials the provider hands out.
func (s *ProviderService) RegisterCourier(providerUserID uint, in *CourierIn) (*entity.DeliveryPerson, error) {
	p, err := s.Repo.GetByUserID(providerUserID)
	if err != nil {
		return nil, ErrNotFound
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	count, err := s.UserRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Email:       email,
		Password:    string(hashed),
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		PhoneNumber: in.PhoneNumber,
		Role:        entity.RoleCourier,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}

	courier := &entity.DeliveryPerson{
		UserID:        user.ID,
		ProviderID:    p.ID,
		PhoneNumber:   in.PhoneNumber,
		IsAvailable:   true,
		IsActive:      true,
		VehicleNumber: in.VehicleNumber,
		VehicleType:   in.VehicleType,
	}
	if err := s.CourierRepo.Create(courier); err != nil {
		return nil, err
	}
	return courier, nil
}

func (s *ProviderService) ListCouriers(providerUserID uint) ([]entity.DeliveryPerson, error) {
	p, err := s.Repo.GetByUserID(providerUserID)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.CourierRepo.ListByProvider(p.ID)
}
