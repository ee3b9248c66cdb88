package services

import (
	"strings"

	"github.com/Sandip-364710/daily-tiffin-service/entity"
	"github.com/Sandip-364710/daily-tiffin-service/repository"

	"github.com/shopspring/decimal"
)

type TiffinService struct {
	Repo         *repository.TiffinRepository
	ProviderRepo *repository.ProviderRepository
}

func NewTiffinService(repo *repository.TiffinRepository, providerRepo *repository.ProviderRepository) *TiffinService {
	return &TiffinService{Repo: repo, ProviderRepo: providerRepo}
}

type TiffinIn struct {
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	MealType        string          `json:"mealType" binding:"required"`
	Price           decimal.Decimal `json:"price" binding:"required"`
	IsVegetarian    *bool           `json:"isVegetarian"`
	SpiceLevel      string          `json:"spiceLevel"`
	Ingredients     string          `json:"ingredients"`
	PreparationTime int             `json:"preparationTime"`
	Serves          int             `json:"serves"`
	CategoryID      *uint           `json:"categoryId"`
}

// ListVisible is the public catalog: approved and available items only.
func (s *TiffinService) ListVisible(f repository.TiffinFilter) ([]entity.Tiffin, error) {
	return s.Repo.ListVisible(f)
}

func (s *TiffinService) GetVisible(id uint) (*entity.Tiffin, error) {
	t, err := s.Repo.GetVisibleByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return t, nil
}

// Create adds a menu item for the provider. New items start unapproved
// and stay off the public catalog until an admin approves them.
func (s *TiffinService) Create(providerUserID uint, in *TiffinIn) (*entity.Tiffin, error) {
	p, err := s.ProviderRepo.GetByUserID(providerUserID)
	if err != nil {
		return nil, ErrNotFound
	}
	if !entity.IsMealType(in.MealType) {
		return nil, ErrInvalidMenuItem
	}
	spice := in.SpiceLevel
	if spice == "" {
		spice = entity.SpiceMedium
	}
	if !entity.IsSpiceLevel(spice) {
		return nil, ErrInvalidMenuItem
	}

	t := &entity.Tiffin{
		ProviderID:      p.ID,
		CategoryID:      in.CategoryID,
		Name:            strings.TrimSpace(in.Name),
		Description:     in.Description,
		MealType:        in.MealType,
		Price:           in.Price,
		IsAvailable:     true,
		IsVegetarian:    in.IsVegetarian == nil || *in.IsVegetarian,
		IsApproved:      false,
		SpiceLevel:      spice,
		Ingredients:     in.Ingredients,
		PreparationTime: in.PreparationTime,
		Serves:          max(in.Serves, 1),
	}
	if err := s.Repo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Update edits the provider's own item in place. Approval state is not
// reset on edit.
func (s *TiffinService) Update(providerUserID, tiffinID uint, in *TiffinIn) (*entity.Tiffin, error) {
	p, err := s.ProviderRepo.GetByUserID(providerUserID)
	if err != nil {
		return nil, ErrNotFound
	}
	t, err := s.Repo.GetByID(tiffinID)
	if err != nil {
		return nil, ErrNotFound
	}
	if t.ProviderID != p.ID {
		return nil, ErrForbidden
	}
	if !entity.IsMealType(in.MealType) {
		return nil, ErrInvalidMenuItem
	}

	t.Name = strings.TrimSpace(in.Name)
	t.Description = in.Description
	t.MealType = in.MealType
	t.Price = in.Price
	if in.IsVegetarian != nil {
		t.IsVegetarian = *in.IsVegetarian
	}
	if in.SpiceLevel != "" {
		if !entity.IsSpiceLevel(in.SpiceLevel) {
			return nil, ErrInvalidMenuItem
		}
		t.SpiceLevel = in.SpiceLevel
	}
	t.Ingredients = in.Ingredients
	t.PreparationTime = in.PreparationTime
	if in.Serves > 0 {
		t.Serves = in.Serves
	}
	t.CategoryID = in.CategoryID

	if err := s.Repo.Save(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TiffinService) ListMine(providerUserID uint) ([]entity.Tiffin, error) {
	p, err := s.ProviderRepo.GetByUserID(providerUserID)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.Repo.ListByProvider(p.ID)
}

func (s *TiffinService) ToggleAvailability(providerUserID, tiffinID uint) (*entity.Tiffin, error) {
	p, err := s.ProviderRepo.GetByUserID(providerUserID)
	if err != nil {
		return nil, ErrNotFound
	}
	t, err := s.Repo.GetByID(tiffinID)
	if err != nil {
		return nil, ErrNotFound
	}
	if t.ProviderID != p.ID {
		return nil, ErrForbidden
	}
	if err := s.Repo.SetAvailability(t.ID, !t.IsAvailable); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(t.ID)
}

// ListPending feeds the admin moderation queue.
func (s *TiffinService) ListPending() ([]entity.Tiffin, error) {
	return s.Repo.ListPending()
}

func (s *TiffinService) Approve(tiffinID uint) (*entity.Tiffin, error) {
	t, err := s.Repo.GetByID(tiffinID)
	if err != nil {
		return nil, ErrNotFound
	}
	if err := s.Repo.Approve(t.ID); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(t.ID)
}
