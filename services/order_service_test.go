package services

import (
	"testing"

	"github.com/Sandip-364710/daily-tiffin-service/entity"

	"github.com/shopspring/decimal"
)

func checkoutReq() *CheckoutReq {
	return &CheckoutReq{
		DeliveryAddress: "12 Station Road",
		DeliveryPhone:   "+919876543210",
		DeliveryDate:    "2026-09-05",
		DeliveryTime:    "12:30",
	}
}

func TestCheckoutSplitsByProvider(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	cart := newCartForTest(repos)
	orders := newOrdersForTest(db, repos, cart)

	customer := createCustomer(t, db, "c@example.com")
	pa := createProvider(t, db, "pa@example.com", "Annapurna Tiffins", "20.00")
	pb := createProvider(t, db, "pb@example.com", "Swad Kitchen", "10.00")
	thali := createTiffin(t, db, pa.ID, "Gujarati Thali", "100.00")
	dal := createTiffin(t, db, pb.ID, "Dal Baati", "50.00")

	for i := 0; i < 2; i++ {
		if _, err := cart.Add(customer.ID, thali.ID); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	if _, err := cart.Add(customer.ID, dal.ID); err != nil {
		t.Fatalf("add: %v", err)
	}

	created, err := orders.Checkout(customer.ID, checkoutReq())
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("got %d orders, want one per provider", len(created))
	}

	byProvider := map[uint]CheckoutOrder{}
	for _, o := range created {
		byProvider[o.ProviderID] = o
		if !o.TotalAmount.Equal(o.Subtotal.Add(o.DeliveryCharge)) {
			t.Errorf("order %s: total %s != subtotal %s + charge %s",
				o.OrderNumber, o.TotalAmount, o.Subtotal, o.DeliveryCharge)
		}
	}
	if want := decimal.RequireFromString("220.00"); !byProvider[pa.ID].TotalAmount.Equal(want) {
		t.Errorf("provider A total = %s, want %s", byProvider[pa.ID].TotalAmount, want)
	}
	if want := decimal.RequireFromString("60.00"); !byProvider[pb.ID].TotalAmount.Equal(want) {
		t.Errorf("provider B total = %s, want %s", byProvider[pb.ID].TotalAmount, want)
	}

	// both carts are emptied
	view, _ := cart.View(customer.ID)
	if view.Count != 0 {
		t.Errorf("session cart still has %d items after checkout", view.Count)
	}
	data, err := repos.SavedCart.Get(customer.ID)
	if err != nil {
		t.Fatalf("saved cart: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("saved cart = %s, want {}", data)
	}

	// provider counters bumped
	pa2, _ := repos.Providers.GetByID(pa.ID)
	if pa2.TotalOrders != 1 {
		t.Errorf("provider A total_orders = %d, want 1", pa2.TotalOrders)
	}
}

func TestCheckoutSnapshotsPrices(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	cart := newCartForTest(repos)
	orders := newOrdersForTest(db, repos, cart)

	customer := createCustomer(t, db, "c@example.com")
	p := createProvider(t, db, "p@example.com", "Annapurna Tiffins", "20.00")
	thali := createTiffin(t, db, p.ID, "Gujarati Thali", "100.00")

	if _, err := cart.Add(customer.ID, thali.ID); err != nil {
		t.Fatalf("add: %v", err)
	}

	// price change between add and checkout must not leak into the order
	db.Model(thali).Update("price", decimal.RequireFromString("150.00"))

	created, err := orders.Checkout(customer.ID, checkoutReq())
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	items, err := repos.Orders.GetItems(created[0].ID)
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if want := decimal.RequireFromString("100.00"); !items[0].Price.Equal(want) {
		t.Errorf("snapshot price = %s, want %s", items[0].Price, want)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	cart := newCartForTest(repos)
	orders := newOrdersForTest(db, repos, cart)
	customer := createCustomer(t, db, "c@example.com")

	if _, err := orders.Checkout(customer.ID, checkoutReq()); err != ErrEmptyCart {
		t.Errorf("checkout on empty cart = %v, want ErrEmptyCart", err)
	}
}

func TestUpdateStatusValidation(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	cart := newCartForTest(repos)
	orders := newOrdersForTest(db, repos, cart)

	customer := createCustomer(t, db, "c@example.com")
	p := createProvider(t, db, "p@example.com", "Annapurna Tiffins", "20.00")
	thali := createTiffin(t, db, p.ID, "Gujarati Thali", "100.00")
	if _, err := cart.Add(customer.ID, thali.ID); err != nil {
		t.Fatalf("add: %v", err)
	}
	created, err := orders.Checkout(customer.ID, checkoutReq())
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	orderID := created[0].ID

	if _, err := orders.UpdateStatus(p.UserID, orderID, "on_the_moon"); err != ErrInvalidStatus {
		t.Errorf("bogus status = %v, want ErrInvalidStatus", err)
	}

	// membership is the only rule; a jump straight to delivered is allowed
	o, err := orders.UpdateStatus(p.UserID, orderID, entity.OrderStatusDelivered)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if o.Status != entity.OrderStatusDelivered {
		t.Errorf("status = %s, want delivered", o.Status)
	}
	if o.ActualDeliveryTime == nil {
		t.Error("delivered should stamp actual_delivery_time")
	}

	// another provider cannot touch it
	other := createProvider(t, db, "other@example.com", "Other Kitchen", "5.00")
	if _, err := orders.UpdateStatus(other.UserID, orderID, entity.OrderStatusConfirmed); err != ErrNotFound {
		t.Errorf("foreign provider update = %v, want ErrNotFound", err)
	}
}

func TestCustomerCancelWindow(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	cart := newCartForTest(repos)
	orders := newOrdersForTest(db, repos, cart)

	customer := createCustomer(t, db, "c@example.com")
	p := createProvider(t, db, "p@example.com", "Annapurna Tiffins", "20.00")
	thali := createTiffin(t, db, p.ID, "Gujarati Thali", "100.00")
	if _, err := cart.Add(customer.ID, thali.ID); err != nil {
		t.Fatalf("add: %v", err)
	}
	created, err := orders.Checkout(customer.ID, checkoutReq())
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	orderID := created[0].ID

	o, err := orders.CancelByCustomer(customer.ID, orderID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if o.Status != entity.OrderStatusCancelled {
		t.Errorf("status = %s, want cancelled", o.Status)
	}

	// and a second cancel is out of the window
	if _, err := orders.CancelByCustomer(customer.ID, orderID); err != ErrNotCancellable {
		t.Errorf("cancel on cancelled order = %v, want ErrNotCancellable", err)
	}
}

func TestAssignCourierOwnFleetOnly(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	cart := newCartForTest(repos)
	orders := newOrdersForTest(db, repos, cart)

	customer := createCustomer(t, db, "c@example.com")
	p := createProvider(t, db, "p@example.com", "Annapurna Tiffins", "20.00")
	other := createProvider(t, db, "other@example.com", "Other Kitchen", "5.00")
	thali := createTiffin(t, db, p.ID, "Gujarati Thali", "100.00")
	mine := createCourier(t, db, p.ID, "courier@example.com")
	theirs := createCourier(t, db, other.ID, "courier2@example.com")

	if _, err := cart.Add(customer.ID, thali.ID); err != nil {
		t.Fatalf("add: %v", err)
	}
	created, err := orders.Checkout(customer.ID, checkoutReq())
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	orderID := created[0].ID

	if _, err := orders.AssignCourier(p.UserID, orderID, theirs.ID); err != ErrForbidden {
		t.Errorf("assigning a foreign courier = %v, want ErrForbidden", err)
	}
	o, err := orders.AssignCourier(p.UserID, orderID, mine.ID)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if o.DeliveryPersonID == nil || *o.DeliveryPersonID != mine.ID {
		t.Error("courier was not assigned")
	}
}
