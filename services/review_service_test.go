package services

import (
	"testing"

	"github.com/Sandip-364710/daily-tiffin-service/entity"

	"github.com/shopspring/decimal"
)

func TestItemReviewRecomputesMean(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	reviews := NewReviewService(db, repos.Reviews, repos.Tiffins, repos.Orders, repos.Providers)

	alice := createCustomer(t, db, "alice@example.com")
	bob := createCustomer(t, db, "bob@example.com")
	p := createProvider(t, db, "p@example.com", "Annapurna Tiffins", "20.00")
	thali := createTiffin(t, db, p.ID, "Gujarati Thali", "100.00")

	if _, err := reviews.AddItemReview(alice.ID, thali.ID, 5, "great"); err != nil {
		t.Fatalf("review: %v", err)
	}
	if _, err := reviews.AddItemReview(bob.ID, thali.ID, 2, "meh"); err != nil {
		t.Fatalf("review: %v", err)
	}

	stored, _ := repos.Tiffins.GetByID(thali.ID)
	if want := decimal.RequireFromString("3.5"); !stored.Rating.Equal(want) {
		t.Errorf("rating = %s, want %s", stored.Rating, want)
	}
}

func TestItemReviewDuplicateRejected(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	reviews := NewReviewService(db, repos.Reviews, repos.Tiffins, repos.Orders, repos.Providers)

	alice := createCustomer(t, db, "alice@example.com")
	p := createProvider(t, db, "p@example.com", "Annapurna Tiffins", "20.00")
	thali := createTiffin(t, db, p.ID, "Gujarati Thali", "100.00")

	first, err := reviews.AddItemReview(alice.ID, thali.ID, 5, "great")
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if _, err := reviews.AddItemReview(alice.ID, thali.ID, 1, "changed my mind"); err != ErrAlreadyReviewed {
		t.Errorf("second review = %v, want ErrAlreadyReviewed", err)
	}

	// first review and the aggregate are untouched
	list, _ := reviews.ListForTiffin(thali.ID)
	if len(list) != 1 || list[0].ID != first.ID || list[0].Rating != 5 {
		t.Errorf("stored reviews = %+v, want only the first", list)
	}
	stored, _ := repos.Tiffins.GetByID(thali.ID)
	if want := decimal.RequireFromString("5"); !stored.Rating.Equal(want) {
		t.Errorf("rating = %s, want %s", stored.Rating, want)
	}
}

func TestItemReviewRatingRange(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	reviews := NewReviewService(db, repos.Reviews, repos.Tiffins, repos.Orders, repos.Providers)

	alice := createCustomer(t, db, "alice@example.com")
	p := createProvider(t, db, "p@example.com", "Annapurna Tiffins", "20.00")
	thali := createTiffin(t, db, p.ID, "Gujarati Thali", "100.00")

	for _, rating := range []int{0, 6, -1} {
		if _, err := reviews.AddItemReview(alice.ID, thali.ID, rating, ""); err != ErrInvalidRating {
			t.Errorf("rating %d = %v, want ErrInvalidRating", rating, err)
		}
	}
}

func makeOrder(t *testing.T, f *deliveryFixture, status string) *entity.Order {
	t.Helper()
	return f.orderInStatus(t, status, nil)
}

func TestOrderReviewOnlyAfterDelivery(t *testing.T) {
	f := newDeliveryFixture(t)
	reviews := NewReviewService(f.db, f.repos.Reviews, f.repos.Tiffins, f.repos.Orders, f.repos.Providers)

	pending := makeOrder(t, f, entity.OrderStatusPending)
	in := &OrderReviewIn{FoodQualityRating: 5, DeliveryRating: 4, OverallRating: 4}

	if _, err := reviews.AddOrderReview(f.customer.ID, pending.ID, in); err != ErrNotDelivered {
		t.Errorf("review on pending order = %v, want ErrNotDelivered", err)
	}

	delivered := makeOrder(t, f, entity.OrderStatusDelivered)
	if _, err := reviews.AddOrderReview(f.customer.ID, delivered.ID, in); err != nil {
		t.Fatalf("review on delivered order: %v", err)
	}

	// provider aggregate picked up the overall rating
	p, _ := f.repos.Providers.GetByID(f.provider.ID)
	if want := decimal.RequireFromString("4"); !p.Rating.Equal(want) {
		t.Errorf("provider rating = %s, want %s", p.Rating, want)
	}

	// one review per order
	if _, err := reviews.AddOrderReview(f.customer.ID, delivered.ID, in); err != ErrAlreadyReviewed {
		t.Errorf("second order review = %v, want ErrAlreadyReviewed", err)
	}
}

func TestOrderReviewOwnOrderOnly(t *testing.T) {
	f := newDeliveryFixture(t)
	reviews := NewReviewService(f.db, f.repos.Reviews, f.repos.Tiffins, f.repos.Orders, f.repos.Providers)

	delivered := f.orderInStatus(t, entity.OrderStatusDelivered, nil)

	stranger := createCustomer(t, f.db, "stranger@example.com")
	in := &OrderReviewIn{FoodQualityRating: 5, DeliveryRating: 5, OverallRating: 5}
	if _, err := reviews.AddOrderReview(stranger.ID, delivered.ID, in); err != ErrNotFound {
		t.Errorf("review of someone else's order = %v, want ErrNotFound", err)
	}
}
