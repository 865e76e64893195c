package repository

import (
	"fmt"
	"sort"
	"sync"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
)

// AuctionDB defines the product, bid, and account storage interface for the
// auction system
type AuctionDB interface {
	SaveProduct(p model.Product) error
	GetProduct(productID string) (model.Product, error)
	ListProducts() ([]model.Product, error)
	ListProductsBySeller(sellerID string) ([]model.Product, error)
	ListSoldProducts() ([]model.Product, error)
	ListWonProducts(bidderID string) ([]model.Product, error)
	SlugExists(slug string) (bool, error)

	RecordBid(bid model.Bid) error
	GetBidByBidder(productID, bidderID string) (model.Bid, error)
	GetBidsByProduct(productID string) ([]model.Bid, error)
	GetWinningBid(productID string) (model.Bid, error)
	GetBidAuditTrail(productID string) ([]model.Bid, error)

	GetAccount(userID string) (model.Account, error)
	GetPlatformAccount() (model.Account, error)
	SaveAccount(a model.Account) error

	ApplySettlement(product model.Product, credits ...model.AccountCredit) error
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
type MemoryRepo struct {
	mu           sync.RWMutex
	products     map[string]model.Product          // key: productID
	standingBids map[string]map[string]model.Bid   // key: productID -> bidderID -> standing bid
	auditLog     map[string][]model.Bid            // key: productID -> every accepted bid version, oldest first
	accounts     map[string]model.Account          // key: userID
	platformID   string                            // userID of the platform account
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		products:     make(map[string]model.Product),
		standingBids: make(map[string]map[string]model.Bid),
		auditLog:     make(map[string][]model.Bid),
		accounts:     make(map[string]model.Account),
	}
}

// SaveProduct inserts or updates a product. The slug uniqueness check runs
// inside the write lock, so two concurrent inserts can never mint the same
// slug.
func (r *MemoryRepo) SaveProduct(p model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ProductID == "" {
		return fmt.Errorf("save product: %w", auctionerrors.ErrInvalidProduct)
	}
	if p.Slug != "" {
		for _, existing := range r.products {
			if existing.Slug == p.Slug && existing.ProductID != p.ProductID {
				return fmt.Errorf("save product %s: slug %q: %w", p.ProductID, p.Slug, auctionerrors.ErrSlugTaken)
			}
		}
	}
	r.products[p.ProductID] = p
	return nil
}

// GetProduct returns the product with the given ID
func (r *MemoryRepo) GetProduct(productID string) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[productID]
	if !ok {
		return model.Product{}, fmt.Errorf("get product %s: %w", productID, auctionerrors.ErrProductNotFound)
	}
	return p, nil
}

// ListProducts returns all products, newest first
func (r *MemoryRepo) ListProducts() ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collectProducts(func(model.Product) bool { return true }), nil
}

// ListProductsBySeller returns all products listed by a seller, newest first
func (r *MemoryRepo) ListProductsBySeller(sellerID string) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collectProducts(func(p model.Product) bool { return p.SellerID == sellerID }), nil
}

// ListSoldProducts returns all sold products, newest first
func (r *MemoryRepo) ListSoldProducts() ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collectProducts(func(p model.Product) bool { return p.State == model.StateSold }), nil
}

// ListWonProducts returns all sold products won by the given bidder, newest first
func (r *MemoryRepo) ListWonProducts(bidderID string) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collectProducts(func(p model.Product) bool {
		return p.State == model.StateSold && p.WinningBidderID == bidderID
	}), nil
}

// SlugExists reports whether any product already uses the given slug
func (r *MemoryRepo) SlugExists(slug string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

// collectProducts filters products and sorts them newest first. Caller must hold r.mu.
func (r *MemoryRepo) collectProducts(keep func(model.Product) bool) []model.Product {
	products := make([]model.Product, 0)
	for _, p := range r.products {
		if keep(p) {
			products = append(products, p)
		}
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products
}

// RecordBid stores a bidder's standing bid on a product, replacing any
// previous standing bid by the same bidder, and appends the accepted version
// to the product's audit trail.
func (r *MemoryRepo) RecordBid(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[bid.ProductID]; !ok {
		return fmt.Errorf("record bid for product %s: %w", bid.ProductID, auctionerrors.ErrProductNotFound)
	}

	byBidder, ok := r.standingBids[bid.ProductID]
	if !ok {
		byBidder = make(map[string]model.Bid)
		r.standingBids[bid.ProductID] = byBidder
	}
	byBidder[bid.BidderID] = bid
	r.auditLog[bid.ProductID] = append(r.auditLog[bid.ProductID], bid)

	return nil
}

// GetBidByBidder returns a bidder's standing bid on a product
func (r *MemoryRepo) GetBidByBidder(productID, bidderID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bid, ok := r.standingBids[productID][bidderID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid by %s for product %s: %w", bidderID, productID, auctionerrors.ErrNoBids)
	}
	return bid, nil
}

// GetBidsByProduct returns all standing bids for a product, newest first
func (r *MemoryRepo) GetBidsByProduct(productID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byBidder, ok := r.standingBids[productID]
	if !ok || len(byBidder) == 0 {
		return nil, fmt.Errorf("get bids for product %s: %w", productID, auctionerrors.ErrNoBids)
	}

	bids := make([]model.Bid, 0, len(byBidder))
	for _, b := range byBidder {
		bids = append(bids, b)
	}
	sort.Slice(bids, func(i, j int) bool {
		return bids[i].PlacedAt.After(bids[j].PlacedAt)
	})
	return bids, nil
}

// GetWinningBid returns the highest standing bid for a product
func (r *MemoryRepo) GetWinningBid(productID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byBidder, ok := r.standingBids[productID]
	if !ok || len(byBidder) == 0 {
		return model.Bid{}, fmt.Errorf("get winning bid for product %s: %w", productID, auctionerrors.ErrNoBids)
	}

	var winning model.Bid
	first := true
	for _, b := range byBidder {
		// Ties cannot happen under the strictly-increasing rule; break by
		// earliest placement anyway for determinism.
		if first || b.Amount.GreaterThan(winning.Amount) ||
			(b.Amount.Equal(winning.Amount) && b.PlacedAt.Before(winning.PlacedAt)) {
			winning = b
			first = false
		}
	}
	return winning, nil
}

// GetBidAuditTrail returns every accepted bid version for a product, oldest first
func (r *MemoryRepo) GetBidAuditTrail(productID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trail, ok := r.auditLog[productID]
	if !ok || len(trail) == 0 {
		return nil, fmt.Errorf("get bid audit trail for product %s: %w", productID, auctionerrors.ErrNoBids)
	}
	return append([]model.Bid(nil), trail...), nil
}

// GetAccount returns the account for the given user
func (r *MemoryRepo) GetAccount(userID string) (model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accounts[userID]
	if !ok {
		return model.Account{}, fmt.Errorf("get account %s: %w", userID, auctionerrors.ErrAccountNotFound)
	}
	return a, nil
}

// GetPlatformAccount returns the account that accrues platform commission
func (r *MemoryRepo) GetPlatformAccount() (model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.platformID == "" {
		return model.Account{}, fmt.Errorf("get platform account: %w", auctionerrors.ErrPlatformAccountNotFound)
	}
	a, ok := r.accounts[r.platformID]
	if !ok {
		return model.Account{}, fmt.Errorf("get platform account %s: %w", r.platformID, auctionerrors.ErrPlatformAccountNotFound)
	}
	return a, nil
}

// SaveAccount inserts or updates an account
func (r *MemoryRepo) SaveAccount(a model.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.UserID == "" {
		return fmt.Errorf("save account: %w", auctionerrors.ErrAccountNotFound)
	}
	r.accounts[a.UserID] = a
	return nil
}

// ApplySettlement persists the sold product together with the account credits
// as one unit under a single critical section, so no reader observes a sold
// product whose accounts have not been credited yet. Credits are deltas added
// to the stored balances here, not absolute values: concurrent sales of
// different products sharing a seller or the platform account compose instead
// of overwriting each other.
func (r *MemoryRepo) ApplySettlement(product model.Product, credits ...model.AccountCredit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ProductID]; !ok {
		return fmt.Errorf("apply settlement for product %s: %w", product.ProductID, auctionerrors.ErrProductNotFound)
	}
	for _, c := range credits {
		if _, ok := r.accounts[c.UserID]; !ok {
			return fmt.Errorf("apply settlement for product %s: account %s: %w",
				product.ProductID, c.UserID, auctionerrors.ErrAccountNotFound)
		}
	}

	r.products[product.ProductID] = product
	for _, c := range credits {
		a := r.accounts[c.UserID]
		a.Balance = a.Balance.Add(c.Balance)
		a.CommissionBalance = a.CommissionBalance.Add(c.CommissionBalance)
		r.accounts[c.UserID] = a
	}
	return nil
}

// SetPlatformAccount registers the account that accrues platform commission.
// This method is intended for wiring and tests.
func (r *MemoryRepo) SetPlatformAccount(a model.Account) error {
	if err := r.SaveAccount(a); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.platformID = a.UserID
	return nil
}
