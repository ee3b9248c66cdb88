package services

import (
	"time"

	"github.com/Sandip-364710/daily-tiffin-service/entity"
	"github.com/Sandip-364710/daily-tiffin-service/repository"
	"github.com/Sandip-364710/daily-tiffin-service/utils"

	"gorm.io/gorm"
)

// deliveryETAMinutes is the stub estimate pushed on every location ping.
const deliveryETAMinutes = 15

// TrackingNotifier pushes tracking updates to subscribed watchers.
type TrackingNotifier interface {
	BroadcastTracking(orderID uint, payload any)
}

type DeliveryService struct {
	DB           *gorm.DB
	CourierRepo  *repository.CourierRepository
	OrderRepo    *repository.OrderRepository
	TrackingRepo *repository.TrackingRepository
	ProviderRepo *repository.ProviderRepository
	Notifier     TrackingNotifier
}

func NewDeliveryService(
	db *gorm.DB,
	courierRepo *repository.CourierRepository,
	orderRepo *repository.OrderRepository,
	trackingRepo *repository.TrackingRepository,
	providerRepo *repository.ProviderRepository,
	notifier TrackingNotifier,
) *DeliveryService {
	return &DeliveryService{
		DB: db, CourierRepo: courierRepo, OrderRepo: orderRepo,
		TrackingRepo: trackingRepo, ProviderRepo: providerRepo, Notifier: notifier,
	}
}

type TrackingView struct {
	OrderID         uint             `json:"orderId"`
	OrderNumber     string           `json:"orderNumber"`
	Status          string           `json:"status"`
	CurrentLocation *entity.Location `json:"currentLocation,omitempty"`
	DistanceKm      *float64         `json:"distanceKm,omitempty"`
	ETA             *time.Time       `json:"eta,omitempty"`
	LastUpdated     *time.Time       `json:"lastUpdated,omitempty"`
}

// UpdateLocation records a courier position ping. Only orders assigned to
// the courier and sitting in ready or out_for_delivery accept pings; the
// status filter is what keeps delivered and cancelled orders frozen. The
// first ping on a ready order moves it to out_for_delivery.
func (s *DeliveryService) UpdateLocation(courierUserID, orderID uint, lat, lng float64) (*TrackingView, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, ErrInvalidCoords
	}

	courier, err := s.CourierRepo.GetByUserID(courierUserID)
	if err != nil {
		return nil, ErrForbidden
	}
	order, err := s.OrderRepo.GetForCourier(courier.ID, orderID,
		entity.OrderStatusReady, entity.OrderStatusOutForDelivery)
	if err != nil {
		return nil, ErrNotFound
	}

	loc := entity.Location{Lat: lat, Lng: lng}
	eta := time.Now().Add(deliveryETAMinutes * time.Minute)
	status := order.Status

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.CourierRepo.UpdateLocation(tx, courier.ID, loc.AsJSON()); err != nil {
			return err
		}

		tr, err := s.TrackingRepo.GetOrCreate(tx, order)
		if err != nil {
			return err
		}
		tr.CurrentLocation = loc.AsJSON()
		tr.LastUpdated = time.Now()
		tr.DeliveryPersonID = order.DeliveryPersonID

		updates := map[string]any{"eta": &eta}
		if order.Status == entity.OrderStatusReady {
			status = entity.OrderStatusOutForDelivery
			updates["status"] = status
		}
		tr.Status = status

		if err := s.TrackingRepo.Save(tx, tr); err != nil {
			return err
		}
		return s.OrderRepo.UpdateFields(tx, order.ID, updates)
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	view := &TrackingView{
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
		Status:          status,
		CurrentLocation: &loc,
		ETA:             &eta,
		LastUpdated:     &now,
	}
	if dest, ok := entity.LocationFromJSON(order.DeliveryLocation); ok {
		d := utils.HaversineKm(lat, lng, dest.Lat, dest.Lng)
		view.DistanceKm = &d
	}

	if s.Notifier != nil {
		s.Notifier.BroadcastTracking(order.ID, view)
	}
	return view, nil
}

// Track returns the tracking state to the order's customer or provider.
func (s *DeliveryService) Track(userID uint, role string, orderID uint) (*TrackingView, error) {
	var order *entity.Order
	var err error
	switch role {
	case entity.RoleProvider:
		p, perr := s.ProviderRepo.GetByUserID(userID)
		if perr != nil {
			return nil, ErrNotFound
		}
		order, err = s.OrderRepo.GetForProvider(p.ID, orderID)
	default:
		order, err = s.OrderRepo.GetForCustomer(userID, orderID)
	}
	if err != nil {
		return nil, ErrNotFound
	}

	view := &TrackingView{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		ETA:         order.ETA,
	}

	var tr entity.DeliveryTracking
	if err := s.DB.Where("order_id = ?", order.ID).First(&tr).Error; err == nil {
		view.Status = tr.Status
		if !tr.LastUpdated.IsZero() {
			t := tr.LastUpdated
			view.LastUpdated = &t
		}
		if loc, ok := entity.LocationFromJSON(tr.CurrentLocation); ok {
			view.CurrentLocation = &loc
			if dest, ok := entity.LocationFromJSON(order.DeliveryLocation); ok {
				d := utils.HaversineKm(loc.Lat, loc.Lng, dest.Lat, dest.Lng)
				view.DistanceKm = &d
			}
		}
	}
	return view, nil
}

type CourierDashboard struct {
	Courier   *entity.DeliveryPerson `json:"courier"`
	Active    []entity.Order         `json:"activeOrders"`
	Recent    []entity.Order         `json:"recentDeliveries"`
	Delivered int                    `json:"totalDeliveries"`
}

func (s *DeliveryService) Dashboard(courierUserID uint) (*CourierDashboard, error) {
	courier, err := s.CourierRepo.GetByUserID(courierUserID)
	if err != nil {
		return nil, ErrNotFound
	}
	active, err := s.OrderRepo.ListForCourier(courier.ID,
		entity.OrderStatusReady, entity.OrderStatusOutForDelivery)
	if err != nil {
		return nil, err
	}
	recent, err := s.OrderRepo.ListForCourier(courier.ID, entity.OrderStatusDelivered)
	if err != nil {
		return nil, err
	}
	return &CourierDashboard{
		Courier:   courier,
		Active:    active,
		Recent:    recent,
		Delivered: courier.TotalDeliveries,
	}, nil
}

func (s *DeliveryService) SetAvailability(courierUserID uint, available bool) (*entity.DeliveryPerson, error) {
	courier, err := s.CourierRepo.GetByUserID(courierUserID)
	if err != nil {
		return nil, ErrNotFound
	}
	if err := s.CourierRepo.SetAvailability(courier.ID, available); err != nil {
		return nil, err
	}
	return s.CourierRepo.GetByID(courier.ID)
}
