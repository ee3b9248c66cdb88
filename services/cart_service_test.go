package services

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCartTotalsAcrossProviders(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	cart := newCartForTest(repos)

	customer := createCustomer(t, db, "c@example.com")
	pa := createProvider(t, db, "pa@example.com", "Annapurna Tiffins", "20.00")
	pb := createProvider(t, db, "pb@example.com", "Swad Kitchen", "10.00")
	thali := createTiffin(t, db, pa.ID, "Gujarati Thali", "100.00")
	dal := createTiffin(t, db, pb.ID, "Dal Baati", "50.00")

	// 2 x 100.00 + 1 x 50.00
	if _, err := cart.Add(customer.ID, thali.ID); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := cart.Add(customer.ID, thali.ID); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := cart.Add(customer.ID, dal.ID); err != nil {
		t.Fatalf("add: %v", err)
	}

	view, err := cart.View(customer.ID)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if want := decimal.RequireFromString("250.00"); !view.Subtotal.Equal(want) {
		t.Errorf("subtotal = %s, want %s", view.Subtotal, want)
	}
	if want := decimal.RequireFromString("30.00"); !view.DeliveryCharge.Equal(want) {
		t.Errorf("delivery = %s, want %s", view.DeliveryCharge, want)
	}
	if want := decimal.RequireFromString("280.00"); !view.GrandTotal.Equal(want) {
		t.Errorf("grand total = %s, want %s", view.GrandTotal, want)
	}
	if !view.GrandTotal.Equal(view.Subtotal.Add(view.DeliveryCharge)) {
		t.Error("grand total is not subtotal + delivery")
	}
	if view.Count != 3 {
		t.Errorf("count = %d, want 3", view.Count)
	}
}

func TestCartAddRemoveRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	cart := newCartForTest(repos)

	customer := createCustomer(t, db, "c@example.com")
	p := createProvider(t, db, "p@example.com", "Annapurna Tiffins", "20.00")
	thali := createTiffin(t, db, p.ID, "Gujarati Thali", "100.00")
	extra := createTiffin(t, db, p.ID, "Khichdi", "80.00")

	if _, err := cart.Add(customer.ID, thali.ID); err != nil {
		t.Fatalf("add: %v", err)
	}
	before, _ := cart.View(customer.ID)

	if _, err := cart.Add(customer.ID, extra.ID); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := cart.Remove(customer.ID, extra.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	after, _ := cart.View(customer.ID)
	if !before.GrandTotal.Equal(after.GrandTotal) || before.Count != after.Count {
		t.Errorf("round trip changed cart: before %s/%d after %s/%d",
			before.GrandTotal, before.Count, after.GrandTotal, after.Count)
	}
}

func TestCartRemoveAbsentIsNoop(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	cart := newCartForTest(repos)
	customer := createCustomer(t, db, "c@example.com")

	if _, err := cart.Remove(customer.ID, 999); err != nil {
		t.Errorf("removing an absent item should not error, got %v", err)
	}
}

func TestCartUpdateToZeroRemoves(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	cart := newCartForTest(repos)

	customer := createCustomer(t, db, "c@example.com")
	p := createProvider(t, db, "p@example.com", "Annapurna Tiffins", "20.00")
	thali := createTiffin(t, db, p.ID, "Gujarati Thali", "100.00")

	if _, err := cart.Add(customer.ID, thali.ID); err != nil {
		t.Fatalf("add: %v", err)
	}
	res, err := cart.Update(customer.ID, thali.ID, -1)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !res.Removed {
		t.Error("delta to zero should remove the line")
	}
	if _, err := cart.Update(customer.ID, thali.ID, 1); err != ErrItemNotInCart {
		t.Errorf("update on missing line = %v, want ErrItemNotInCart", err)
	}
}

func TestCartLoginMergeSumsQuantities(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	cart := newCartForTest(repos)

	customer := createCustomer(t, db, "c@example.com")
	p := createProvider(t, db, "p@example.com", "Annapurna Tiffins", "20.00")
	thali := createTiffin(t, db, p.ID, "Gujarati Thali", "100.00")

	// saved mirror from a previous session: 2 units
	saved := Cart{
		cartKey(thali.ID): {Name: "Gujarati Thali", Price: decimal.RequireFromString("100.00"),
			Quantity: 2, ProviderID: p.ID, ProviderName: "Annapurna Tiffins"},
	}
	data, _ := json.Marshal(saved)
	if err := repos.SavedCart.Put(customer.ID, data); err != nil {
		t.Fatalf("put saved cart: %v", err)
	}

	// login restores the mirror first, then the session adds one more
	if err := cart.RestoreOnLogin(customer.ID); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if _, err := cart.Add(customer.ID, thali.ID); err != nil {
		t.Fatalf("add: %v", err)
	}

	view, _ := cart.View(customer.ID)
	if view.Count != 3 {
		t.Errorf("merged count = %d, want 3", view.Count)
	}
}

func TestCartLoginRestoreWritesMergeBack(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	cart := newCartForTest(repos)

	customer := createCustomer(t, db, "c@example.com")
	p := createProvider(t, db, "p@example.com", "Annapurna Tiffins", "20.00")
	thali := createTiffin(t, db, p.ID, "Gujarati Thali", "100.00")

	// live session holds one unit; its persist set the mirror to 1
	if _, err := cart.Add(customer.ID, thali.ID); err != nil {
		t.Fatalf("add: %v", err)
	}

	// stage a two-unit mirror as left behind by an earlier session
	saved := Cart{
		cartKey(thali.ID): {Name: "Gujarati Thali", Price: decimal.RequireFromString("100.00"),
			Quantity: 2, ProviderID: p.ID, ProviderName: "Annapurna Tiffins"},
	}
	data, _ := json.Marshal(saved)
	if err := repos.SavedCart.Put(customer.ID, data); err != nil {
		t.Fatalf("put saved cart: %v", err)
	}

	if err := cart.RestoreOnLogin(customer.ID); err != nil {
		t.Fatalf("restore: %v", err)
	}

	view, _ := cart.View(customer.ID)
	if view.Count != 3 {
		t.Errorf("merged count = %d, want 3", view.Count)
	}

	// the mirror must hold the merged cart, not the pre-merge session
	raw, err := repos.SavedCart.Get(customer.ID)
	if err != nil {
		t.Fatalf("get saved cart: %v", err)
	}
	var mirror Cart
	if err := json.Unmarshal(raw, &mirror); err != nil {
		t.Fatalf("unmarshal mirror: %v", err)
	}
	if got := mirror[cartKey(thali.ID)].Quantity; got != 3 {
		t.Errorf("mirror quantity = %d, want 3", got)
	}
}

func TestCartRejectsInvisibleItem(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	cart := newCartForTest(repos)

	customer := createCustomer(t, db, "c@example.com")
	p := createProvider(t, db, "p@example.com", "Annapurna Tiffins", "20.00")
	hidden := createTiffin(t, db, p.ID, "Unapproved Thali", "100.00")
	db.Model(hidden).Update("is_approved", false)

	if _, err := cart.Add(customer.ID, hidden.ID); err != ErrNotFound {
		t.Errorf("adding unapproved item = %v, want ErrNotFound", err)
	}
}
