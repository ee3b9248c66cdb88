package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/Sandip-364710/daily-tiffin-service/entity"
	"github.com/Sandip-364710/daily-tiffin-service/repository"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// newTestDB opens a fresh in-memory database per test. The named shared
// cache keeps all pooled connections on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.ProviderProfile{}, &entity.DeliveryPerson{},
		&entity.Category{}, &entity.Tiffin{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Review{}, &entity.OrderReview{},
		&entity.SavedCart{}, &entity.DeliveryTracking{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

type testRepos struct {
	Users     *repository.UserRepository
	Providers *repository.ProviderRepository
	Couriers  *repository.CourierRepository
	Tiffins   *repository.TiffinRepository
	SavedCart *repository.SavedCartRepository
	Orders    *repository.OrderRepository
	Reviews   *repository.ReviewRepository
	Tracking  *repository.TrackingRepository
	Analytics *repository.AnalyticsRepository
}

func newTestRepos(db *gorm.DB) *testRepos {
	return &testRepos{
		Users:     repository.NewUserRepository(db),
		Providers: repository.NewProviderRepository(db),
		Couriers:  repository.NewCourierRepository(db),
		Tiffins:   repository.NewTiffinRepository(db),
		SavedCart: repository.NewSavedCartRepository(db),
		Orders:    repository.NewOrderRepository(db),
		Reviews:   repository.NewReviewRepository(db),
		Tracking:  repository.NewTrackingRepository(db),
		Analytics: repository.NewAnalyticsRepository(db),
	}
}

func createCustomer(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", Role: entity.RoleCustomer, City: "Rajkot"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create customer: %v", err)
	}
	return u
}

// createProvider makes a provider user plus profile with the given
// delivery charge.
func createProvider(t *testing.T, db *gorm.DB, email, business, charge string) *entity.ProviderProfile {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", Role: entity.RoleProvider, City: "Rajkot"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create provider user: %v", err)
	}
	p := &entity.ProviderProfile{
		UserID:         u.ID,
		BusinessName:   business,
		DeliveryCharge: decimal.RequireFromString(charge),
		IsActive:       true,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("create provider profile: %v", err)
	}
	return p
}

func createTiffin(t *testing.T, db *gorm.DB, providerID uint, name, price string) *entity.Tiffin {
	t.Helper()
	ti := &entity.Tiffin{
		ProviderID:   providerID,
		Name:         name,
		MealType:     entity.MealLunch,
		Price:        decimal.RequireFromString(price),
		IsAvailable:  true,
		IsApproved:   true,
		IsVegetarian: true,
		SpiceLevel:   entity.SpiceMedium,
		Serves:       1,
	}
	if err := db.Create(ti).Error; err != nil {
		t.Fatalf("create tiffin: %v", err)
	}
	return ti
}

func createCourier(t *testing.T, db *gorm.DB, providerID uint, email string) *entity.DeliveryPerson {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", Role: entity.RoleCourier}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create courier user: %v", err)
	}
	d := &entity.DeliveryPerson{UserID: u.ID, ProviderID: providerID, IsAvailable: true, IsActive: true}
	if err := db.Create(d).Error; err != nil {
		t.Fatalf("create courier: %v", err)
	}
	return d
}

func newCartForTest(r *testRepos) *CartService {
	return NewCartService(r.SavedCart, r.Tiffins, r.Providers)
}

func newOrdersForTest(db *gorm.DB, r *testRepos, cart *CartService) *OrderService {
	return NewOrderService(db, r.Orders, r.Providers, r.Couriers, r.SavedCart, r.Tracking, cart)
}
