package services

import (
	"testing"
	"time"

	"github.com/Sandip-364710/daily-tiffin-service/entity"

	"gorm.io/gorm"
)

type deliveryFixture struct {
	db       *gorm.DB
	repos    *testRepos
	delivery *DeliveryService
	customer *entity.User
	provider *entity.ProviderProfile
	courier  *entity.DeliveryPerson
}

func newDeliveryFixture(t *testing.T) *deliveryFixture {
	t.Helper()
	db := newTestDB(t)
	repos := newTestRepos(db)
	f := &deliveryFixture{
		db:       db,
		repos:    repos,
		delivery: NewDeliveryService(db, repos.Couriers, repos.Orders, repos.Tracking, repos.Providers, nil),
		customer: createCustomer(t, db, "c@example.com"),
		provider: createProvider(t, db, "p@example.com", "Annapurna Tiffins", "20.00"),
	}
	f.courier = createCourier(t, db, f.provider.ID, "courier@example.com")
	return f
}

func (f *deliveryFixture) orderInStatus(t *testing.T, status string, courierID *uint) *entity.Order {
	t.Helper()
	o := &entity.Order{
		CustomerID:       f.customer.ID,
		ProviderID:       f.provider.ID,
		OrderNumber:      "TEST" + status,
		Status:           status,
		PaymentStatus:    entity.PaymentStatusPending,
		DeliveryDate:     time.Now().AddDate(0, 0, 1),
		DeliveryTime:     "12:30",
		DeliveryPersonID: courierID,
		DeliveryLocation: entity.Location{Lat: 22.3039, Lng: 70.8022}.AsJSON(),
	}
	if err := f.db.Create(o).Error; err != nil {
		t.Fatalf("create order: %v", err)
	}
	return o
}

func TestLocationPingKicksReadyOrder(t *testing.T) {
	f := newDeliveryFixture(t)
	o := f.orderInStatus(t, entity.OrderStatusReady, &f.courier.ID)

	before := time.Now()
	view, err := f.delivery.UpdateLocation(f.courier.UserID, o.ID, 22.30, 70.80)
	if err != nil {
		t.Fatalf("update location: %v", err)
	}
	if view.Status != entity.OrderStatusOutForDelivery {
		t.Errorf("status = %s, want out_for_delivery", view.Status)
	}
	if view.ETA == nil {
		t.Fatal("ping should set an ETA")
	}
	if got := view.ETA.Sub(before); got < 14*time.Minute || got > 16*time.Minute {
		t.Errorf("ETA offset = %v, want about 15m", got)
	}
	if view.DistanceKm == nil {
		t.Error("order has a destination, distanceKm should be set")
	}

	stored, _ := f.repos.Orders.GetByID(o.ID)
	if stored.Status != entity.OrderStatusOutForDelivery {
		t.Errorf("stored status = %s, want out_for_delivery", stored.Status)
	}
}

func TestLocationPingNeverRevivesTerminalOrders(t *testing.T) {
	f := newDeliveryFixture(t)
	for _, status := range []string{entity.OrderStatusDelivered, entity.OrderStatusCancelled} {
		o := f.orderInStatus(t, status, &f.courier.ID)
		if _, err := f.delivery.UpdateLocation(f.courier.UserID, o.ID, 22.30, 70.80); err != ErrNotFound {
			t.Errorf("ping on %s order = %v, want ErrNotFound", status, err)
		}
		stored, _ := f.repos.Orders.GetByID(o.ID)
		if stored.Status != status {
			t.Errorf("ping mutated %s order to %s", status, stored.Status)
		}
	}
}

func TestLocationPingRejectsUnassignedCourier(t *testing.T) {
	f := newDeliveryFixture(t)
	o := f.orderInStatus(t, entity.OrderStatusReady, nil)

	if _, err := f.delivery.UpdateLocation(f.courier.UserID, o.ID, 22.30, 70.80); err != ErrNotFound {
		t.Errorf("ping on unassigned order = %v, want ErrNotFound", err)
	}
}

func TestLocationPingValidatesCoordinates(t *testing.T) {
	f := newDeliveryFixture(t)
	o := f.orderInStatus(t, entity.OrderStatusReady, &f.courier.ID)

	cases := []struct{ lat, lng float64 }{
		{91, 0}, {-91, 0}, {0, 181}, {0, -181},
	}
	for _, tc := range cases {
		if _, err := f.delivery.UpdateLocation(f.courier.UserID, o.ID, tc.lat, tc.lng); err != ErrInvalidCoords {
			t.Errorf("coords (%v,%v) = %v, want ErrInvalidCoords", tc.lat, tc.lng, err)
		}
	}
}

func TestTrackVisibleToCustomerAndProvider(t *testing.T) {
	f := newDeliveryFixture(t)
	o := f.orderInStatus(t, entity.OrderStatusOutForDelivery, &f.courier.ID)

	if _, err := f.delivery.UpdateLocation(f.courier.UserID, o.ID, 22.31, 70.81); err != nil {
		t.Fatalf("update location: %v", err)
	}

	view, err := f.delivery.Track(f.customer.ID, entity.RoleCustomer, o.ID)
	if err != nil {
		t.Fatalf("customer track: %v", err)
	}
	if view.CurrentLocation == nil {
		t.Error("customer view should include the courier location")
	}
	if view.DistanceKm == nil {
		t.Error("track should include the courier to destination distance")
	}

	if _, err := f.delivery.Track(f.provider.UserID, entity.RoleProvider, o.ID); err != nil {
		t.Errorf("provider track: %v", err)
	}

	stranger := createCustomer(t, f.db, "stranger@example.com")
	if _, err := f.delivery.Track(stranger.ID, entity.RoleCustomer, o.ID); err != ErrNotFound {
		t.Errorf("stranger track = %v, want ErrNotFound", err)
	}
}
