package services

import (
	"time"

	"github.com/Sandip-364710/daily-tiffin-service/entity"

	"gorm.io/gorm"
)

// UpdateStatus lets the owning provider set any order status from the
// enum. Membership is the only validation; a provider may jump states.
func (s *OrderService) UpdateStatus(providerUserID, orderID uint, status string) (*entity.Order, error) {
	if !entity.IsOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	p, err := s.ProviderRepo.GetByUserID(providerUserID)
	if err != nil {
		return nil, ErrForbidden
	}
	o, err := s.Repo.GetForProvider(p.ID, orderID)
	if err != nil {
		return nil, ErrNotFound
	}

	updates := map[string]any{"status": status}
	if status == entity.OrderStatusDelivered {
		now := time.Now()
		updates["actual_delivery_time"] = &now
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.UpdateFields(tx, o.ID, updates); err != nil {
			return err
		}
		if status == entity.OrderStatusDelivered && o.DeliveryPersonID != nil {
			if err := s.CourierRepo.IncrementTotalDeliveries(tx, *o.DeliveryPersonID); err != nil {
				return err
			}
		}
		// tracking row mirrors the order status when one exists
		return s.TrackingRepo.UpdateStatus(tx, o.ID, status)
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByID(o.ID)
}

// CancelByCustomer cancels the customer's own order while it is still in
// a pre-kitchen state.
func (s *OrderService) CancelByCustomer(customerID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetForCustomer(customerID, orderID)
	if err != nil {
		return nil, ErrNotFound
	}
	if !o.CanCancel() {
		return nil, ErrNotCancellable
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.UpdateFields(tx, o.ID, map[string]any{
			"status": entity.OrderStatusCancelled,
		}); err != nil {
			return err
		}
		return s.TrackingRepo.UpdateStatus(tx, o.ID, entity.OrderStatusCancelled)
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByID(o.ID)
}

// AssignCourier attaches one of the provider's own couriers to the order.
func (s *OrderService) AssignCourier(providerUserID, orderID, courierID uint) (*entity.Order, error) {
	p, err := s.ProviderRepo.GetByUserID(providerUserID)
	if err != nil {
		return nil, ErrForbidden
	}
	o, err := s.Repo.GetForProvider(p.ID, orderID)
	if err != nil {
		return nil, ErrNotFound
	}
	if entity.IsTerminalOrderStatus(o.Status) {
		return nil, ErrInvalidStatus
	}

	courier, err := s.CourierRepo.GetByID(courierID)
	if err != nil {
		return nil, ErrNotFound
	}
	if courier.ProviderID != p.ID {
		return nil, ErrForbidden
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.AssignCourier(tx, o.ID, courier.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByID(o.ID)
}
