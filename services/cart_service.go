package services

import (
	"encoding/json"
	"log"
	"sort"
	"strconv"
	"sync"

	"github.com/Sandip-364710/daily-tiffin-service/repository"

	"github.com/shopspring/decimal"
)

// CartLine is one session-cart entry. Price serializes as a string so the
// durable mirror round-trips without float drift.
type CartLine struct {
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	ProviderID   uint            `json:"provider_id"`
	ProviderName string          `json:"provider_name"`
}

// Cart maps stringified tiffin id -> line.
type Cart map[string]CartLine

type CartItemView struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	Total        decimal.Decimal `json:"total"`
	ProviderName string          `json:"provider_name"`
}

type CartView struct {
	Items          []CartItemView  `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DeliveryCharge decimal.Decimal `json:"delivery_charge"`
	GrandTotal     decimal.Decimal `json:"grand_total"`
	Count          int             `json:"count"`
}

type UpdateResult struct {
	Removed        bool            `json:"removed"`
	Quantity       int             `json:"quantity"`
	ItemTotal      decimal.Decimal `json:"item_total"`
	Subtotal       decimal.Decimal `json:"cart_subtotal"`
	DeliveryCharge decimal.Decimal `json:"cart_delivery"`
	GrandTotal     decimal.Decimal `json:"cart_grand_total"`
	Count          int             `json:"cart_count"`
}

// CartService keeps the live per-user cart in memory (session scope) and
// mirrors every mutation to the saved_carts row. The mirror is
// best-effort: a failed write never fails the request.
type CartService struct {
	mu       sync.Mutex
	sessions map[uint]Cart

	SavedRepo    *repository.SavedCartRepository
	TiffinRepo   *repository.TiffinRepository
	ProviderRepo *repository.ProviderRepository
}

func NewCartService(saved *repository.SavedCartRepository, tiffins *repository.TiffinRepository, providers *repository.ProviderRepository) *CartService {
	return &CartService{
		sessions:     make(map[uint]Cart),
		SavedRepo:    saved,
		TiffinRepo:   tiffins,
		ProviderRepo: providers,
	}
}

func cartKey(tiffinID uint) string { return strconv.FormatUint(uint64(tiffinID), 10) }

func (s *CartService) snapshotLocked(userID uint) Cart {
	out := make(Cart, len(s.sessions[userID]))
	for k, v := range s.sessions[userID] {
		out[k] = v
	}
	return out
}

// Snapshot returns a copy of the live cart; checkout works off it.
func (s *CartService) Snapshot(userID uint) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(userID)
}

// Add puts one unit of the item into the cart; a present key increments
// quantity. Only approved, available items may enter. Returns the total
// item count for the badge.
func (s *CartService) Add(userID, tiffinID uint) (int, error) {
	t, err := s.TiffinRepo.GetVisibleByID(tiffinID)
	if err != nil {
		return 0, ErrNotFound
	}
	providerName := ""
	if p, err := s.ProviderRepo.GetByID(t.ProviderID); err == nil {
		providerName = p.BusinessName
	}

	s.mu.Lock()
	cart := s.sessions[userID]
	if cart == nil {
		cart = make(Cart)
		s.sessions[userID] = cart
	}
	key := cartKey(tiffinID)
	if line, ok := cart[key]; ok {
		line.Quantity++
		cart[key] = line
	} else {
		cart[key] = CartLine{
			Name:         t.Name,
			Price:        t.Price,
			Quantity:     1,
			ProviderID:   t.ProviderID,
			ProviderName: providerName,
		}
	}
	count := 0
	for _, line := range cart {
		count += line.Quantity
	}
	mirror := s.snapshotLocked(userID)
	s.mu.Unlock()

	s.persist(userID, mirror)
	return count, nil
}

// Update applies a signed quantity delta; the entry is removed when the
// quantity reaches zero or below.
func (s *CartService) Update(userID, tiffinID uint, delta int) (*UpdateResult, error) {
	key := cartKey(tiffinID)

	s.mu.Lock()
	cart := s.sessions[userID]
	line, ok := cart[key]
	if !ok {
		s.mu.Unlock()
		return nil, ErrItemNotInCart
	}
	res := &UpdateResult{}
	line.Quantity += delta
	if line.Quantity <= 0 {
		delete(cart, key)
		res.Removed = true
	} else {
		cart[key] = line
		res.Quantity = line.Quantity
		res.ItemTotal = line.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
	}
	mirror := s.snapshotLocked(userID)
	s.mu.Unlock()

	s.persist(userID, mirror)
	s.fillTotals(mirror, res)
	return res, nil
}

// Remove drops the entry; removing an absent key is a no-op, like popping
// from the session dict.
func (s *CartService) Remove(userID, tiffinID uint) (*UpdateResult, error) {
	s.mu.Lock()
	cart := s.sessions[userID]
	delete(cart, cartKey(tiffinID))
	mirror := s.snapshotLocked(userID)
	s.mu.Unlock()

	s.persist(userID, mirror)
	res := &UpdateResult{Removed: true}
	s.fillTotals(mirror, res)
	return res, nil
}

func (s *CartService) View(userID uint) (*CartView, error) {
	cart := s.Snapshot(userID)

	keys := make([]string, 0, len(cart))
	for k := range cart {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	view := &CartView{Items: make([]CartItemView, 0, len(cart))}
	for _, k := range keys {
		line := cart[k]
		total := line.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		view.Items = append(view.Items, CartItemView{
			ID:           k,
			Name:         line.Name,
			Price:        line.Price,
			Quantity:     line.Quantity,
			Total:        total,
			ProviderName: line.ProviderName,
		})
		view.Subtotal = view.Subtotal.Add(total)
		view.Count += line.Quantity
	}
	view.DeliveryCharge = s.deliveryEstimate(cart)
	view.GrandTotal = view.Subtotal.Add(view.DeliveryCharge)
	return view, nil
}

// RestoreOnLogin merges the durable mirror into the session cart by
// summing quantities for matching keys, then writes the merged cart
// back to the mirror so a restart before the next mutation keeps it.
func (s *CartService) RestoreOnLogin(userID uint) error {
	data, err := s.SavedRepo.Get(userID)
	if err != nil {
		return err
	}
	saved := make(Cart)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &saved); err != nil {
			return err
		}
	}

	s.mu.Lock()
	cart := s.sessions[userID]
	if cart == nil {
		cart = make(Cart)
		s.sessions[userID] = cart
	}
	for key, line := range saved {
		if cur, ok := cart[key]; ok {
			cur.Quantity += line.Quantity
			cart[key] = cur
		} else {
			cart[key] = line
		}
	}
	mirror := s.snapshotLocked(userID)
	s.mu.Unlock()

	s.persist(userID, mirror)
	return nil
}

// Logout persists the session cart, then drops it. The durable mirror
// survives for the next login.
func (s *CartService) Logout(userID uint) {
	s.mu.Lock()
	mirror := s.snapshotLocked(userID)
	delete(s.sessions, userID)
	s.mu.Unlock()

	s.persist(userID, mirror)
}

// DropSession forgets the live cart without touching the mirror; checkout
// calls it after clearing the durable row inside its transaction.
func (s *CartService) DropSession(userID uint) {
	s.mu.Lock()
	delete(s.sessions, userID)
	s.mu.Unlock()
}

// deliveryEstimate sums each distinct provider's configured charge; it is
// deliberately not deduplicated by delivery radius.
func (s *CartService) deliveryEstimate(cart Cart) decimal.Decimal {
	seen := make(map[uint]bool)
	ids := make([]uint, 0)
	for _, line := range cart {
		if !seen[line.ProviderID] {
			seen[line.ProviderID] = true
			ids = append(ids, line.ProviderID)
		}
	}
	charge := decimal.Zero
	providers, err := s.ProviderRepo.GetByIDs(ids)
	if err != nil {
		return charge
	}
	for _, p := range providers {
		charge = charge.Add(p.DeliveryCharge)
	}
	return charge
}

func (s *CartService) fillTotals(cart Cart, res *UpdateResult) {
	for _, line := range cart {
		res.Subtotal = res.Subtotal.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		res.Count += line.Quantity
	}
	res.DeliveryCharge = s.deliveryEstimate(cart)
	res.GrandTotal = res.Subtotal.Add(res.DeliveryCharge)
}

func (s *CartService) persist(userID uint, cart Cart) {
	data, err := json.Marshal(cart)
	if err == nil {
		err = s.SavedRepo.Put(userID, data)
	}
	if err != nil {
		// mirror is best-effort; never fail the request over it
		log.Printf("cart mirror for user %d failed: %v", userID, err)
	}
}
