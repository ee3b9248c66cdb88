package services

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Sandip-364710/daily-tiffin-service/entity"
	"github.com/Sandip-364710/daily-tiffin-service/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct {
	DB           *gorm.DB
	Repo         *repository.OrderRepository
	ProviderRepo *repository.ProviderRepository
	CourierRepo  *repository.CourierRepository
	SavedRepo    *repository.SavedCartRepository
	TrackingRepo *repository.TrackingRepository
	Cart         *CartService
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	providerRepo *repository.ProviderRepository,
	courierRepo *repository.CourierRepository,
	savedRepo *repository.SavedCartRepository,
	trackingRepo *repository.TrackingRepository,
	cart *CartService,
) *OrderService {
	return &OrderService{
		DB: db, Repo: repo, ProviderRepo: providerRepo, CourierRepo: courierRepo,
		SavedRepo: savedRepo, TrackingRepo: trackingRepo, Cart: cart,
	}
}

type CheckoutReq struct {
	DeliveryAddress     string           `json:"deliveryAddress" binding:"required"`
	DeliveryPhone       string           `json:"deliveryPhone" binding:"required"`
	DeliveryDate        string           `json:"deliveryDate" binding:"required"` // YYYY-MM-DD
	DeliveryTime        string           `json:"deliveryTime" binding:"required"` // HH:MM
	SpecialInstructions string           `json:"specialInstructions"`
	DeliveryLocation    *entity.Location `json:"deliveryLocation,omitempty"`
}

type CheckoutOrder struct {
	ID             uint            `json:"id"`
	OrderNumber    string          `json:"orderNumber"`
	ProviderID     uint            `json:"providerId"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DeliveryCharge decimal.Decimal `json:"deliveryCharge"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
}

func newOrderNumber() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

// Checkout partitions the cart by provider and creates one order per
// partition, each line snapshotting the price at order time. All orders
// of one checkout commit in a single transaction; a failure rolls back
// the whole set.
func (s *OrderService) Checkout(customerID uint, req *CheckoutReq) ([]CheckoutOrder, error) {
	cart := s.Cart.Snapshot(customerID)
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	deliveryDate, err := time.Parse("2006-01-02", req.DeliveryDate)
	if err != nil {
		return nil, ErrInvalidSchedule
	}
	if _, err := time.Parse("15:04", req.DeliveryTime); err != nil {
		return nil, ErrInvalidSchedule
	}

	// partition by provider, deterministic order
	partitions := make(map[uint][]string)
	for key, line := range cart {
		partitions[line.ProviderID] = append(partitions[line.ProviderID], key)
	}
	providerIDs := make([]uint, 0, len(partitions))
	for pid := range partitions {
		providerIDs = append(providerIDs, pid)
	}
	sort.Slice(providerIDs, func(i, j int) bool { return providerIDs[i] < providerIDs[j] })

	// load providers up front; reads through another connection inside
	// the transaction would contend with the row locks it holds
	profiles, err := s.ProviderRepo.GetByIDs(providerIDs)
	if err != nil {
		return nil, err
	}
	providersByID := make(map[uint]*entity.ProviderProfile, len(profiles))
	for i := range profiles {
		providersByID[profiles[i].ID] = &profiles[i]
	}

	out := make([]CheckoutOrder, 0, len(partitions))
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for _, pid := range providerIDs {
			provider, ok := providersByID[pid]
			if !ok {
				return ErrNotFound
			}

			keys := partitions[pid]
			sort.Strings(keys)

			subtotal := decimal.Zero
			for _, key := range keys {
				line := cart[key]
				subtotal = subtotal.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
			}
			total := subtotal.Add(provider.DeliveryCharge)

			order := entity.Order{
				CustomerID:          customerID,
				ProviderID:          pid,
				OrderNumber:         newOrderNumber(),
				Status:              entity.OrderStatusPending,
				PaymentStatus:       entity.PaymentStatusPending,
				DeliveryAddress:     req.DeliveryAddress,
				DeliveryPhone:       req.DeliveryPhone,
				DeliveryDate:        deliveryDate,
				DeliveryTime:        req.DeliveryTime,
				Subtotal:            subtotal,
				DeliveryCharge:      provider.DeliveryCharge,
				TotalAmount:         total,
				SpecialInstructions: req.SpecialInstructions,
			}
			if req.DeliveryLocation != nil {
				order.DeliveryLocation = req.DeliveryLocation.AsJSON()
			}
			if err := s.Repo.Create(tx, &order); err != nil {
				return err
			}

			for _, key := range keys {
				line := cart[key]
				tiffinID, err := strconv.ParseUint(key, 10, 64)
				if err != nil {
					return err
				}
				item := entity.OrderItem{
					OrderID:  order.ID,
					TiffinID: uint(tiffinID),
					Quantity: line.Quantity,
					Price:    line.Price, // price at time of order
				}
				if err := s.Repo.CreateItem(tx, &item); err != nil {
					return err
				}
			}

			if err := s.ProviderRepo.IncrementTotalOrders(tx, pid); err != nil {
				return err
			}

			out = append(out, CheckoutOrder{
				ID:             order.ID,
				OrderNumber:    order.OrderNumber,
				ProviderID:     pid,
				Subtotal:       subtotal,
				DeliveryCharge: provider.DeliveryCharge,
				TotalAmount:    total,
			})
		}

		// durable mirror goes with the same commit
		return s.SavedRepo.Clear(tx, customerID)
	})
	if err != nil {
		return nil, err
	}

	s.Cart.DropSession(customerID)
	return out, nil
}

// HistoryForUser lists the customer's own orders, or the provider's
// received ones.
func (s *OrderService) HistoryForUser(userID uint, role string) ([]entity.Order, error) {
	if role == entity.RoleProvider {
		p, err := s.ProviderRepo.GetByUserID(userID)
		if err != nil {
			return []entity.Order{}, nil
		}
		return s.Repo.ListForProvider(p.ID)
	}
	return s.Repo.ListForCustomer(userID)
}

type OrderDetail struct {
	Order     entity.Order       `json:"order"`
	Items     []entity.OrderItem `json:"items"`
	CanCancel bool               `json:"canCancel"`
}

func (s *OrderService) Detail(userID uint, role string, orderID uint) (*OrderDetail, error) {
	var o *entity.Order
	var err error
	if role == entity.RoleProvider {
		p, perr := s.ProviderRepo.GetByUserID(userID)
		if perr != nil {
			return nil, ErrNotFound
		}
		o, err = s.Repo.GetForProvider(p.ID, orderID)
	} else {
		o, err = s.Repo.GetForCustomer(userID, orderID)
	}
	if err != nil {
		return nil, ErrNotFound
	}

	items, err := s.Repo.GetItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items, CanCancel: o.CanCancel()}, nil
}
