package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"auction-house/internal/auctionerrors"
)

// Role determines which operations an account may perform
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleSeller Role = "seller"
	RoleBuyer  Role = "buyer"
)

// Account holds a user's funds and identity within the auction system.
// The platform account additionally accrues commission in CommissionBalance.
type Account struct {
	UserID            string          `json:"user_id"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	Role              Role            `json:"role"`
	Balance           decimal.Decimal `json:"balance"`
	CommissionBalance decimal.Decimal `json:"commission_balance"`
}

// ProductState is the auction lifecycle state of a product
type ProductState string

const (
	StateOpen     ProductState = "open"     // created by seller, not yet biddable
	StateVerified ProductState = "verified" // admin approved, bidding enabled
	StateSold     ProductState = "sold"     // terminal
)

// Product represents an auction listing
type Product struct {
	ProductID       string          `json:"product_id"`
	SellerID        string          `json:"seller_id"`
	Title           string          `json:"title"`
	Slug            string          `json:"slug"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	StartingPrice   decimal.Decimal `json:"starting_price"`
	CommissionRate  int64           `json:"commission_rate"` // percent, meaningful once verified
	State           ProductState    `json:"state"`
	WinningBidderID string          `json:"winning_bidder_id,omitempty"`
	FinalPrice      decimal.Decimal `json:"final_price"`
	CreatedAt       time.Time       `json:"created_at"`
}

// AcceptingBids reports whether the product may receive bids in its current state
func (p *Product) AcceptingBids() error {
	switch p.State {
	case StateVerified:
		return nil
	case StateSold:
		return auctionerrors.ErrAlreadySold
	default:
		return auctionerrors.ErrNotVerified
	}
}

// Verify transitions the product to the verified state and records the
// commission rate. Re-verifying an already verified product only updates the
// rate; a sold product can never be verified again.
func (p *Product) Verify(commissionRate int64) error {
	if commissionRate < 0 || commissionRate > 100 {
		return fmt.Errorf("commission rate %d: %w", commissionRate, auctionerrors.ErrInvalidCommission)
	}
	if p.State == StateSold {
		return auctionerrors.ErrAlreadySold
	}
	p.State = StateVerified
	p.CommissionRate = commissionRate
	return nil
}

// MarkSold transitions the product to its terminal state. Only a verified
// product can be sold, and the transition happens exactly once.
func (p *Product) MarkSold(winningBidderID string, finalPrice decimal.Decimal) error {
	switch p.State {
	case StateSold:
		return auctionerrors.ErrAlreadySold
	case StateOpen:
		return auctionerrors.ErrNotVerified
	}
	p.State = StateSold
	p.WinningBidderID = winningBidderID
	p.FinalPrice = finalPrice
	return nil
}

// Bid represents a bidder's standing offer on a product. There is exactly one
// standing bid per (bidder, product); raising it mutates Amount in place while
// BidID and PlacedAt keep identifying the original bid.
type Bid struct {
	BidID     string          `json:"bid_id"`
	ProductID string          `json:"product_id"`
	BidderID  string          `json:"bidder_id"`
	Amount    decimal.Decimal `json:"amount"`
	PlacedAt  time.Time       `json:"placed_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// AccountCredit is a balance delta applied to an account as part of a
// settlement. Deltas compose: two sales crediting the same account add up
// regardless of the order the store applies them in.
type AccountCredit struct {
	UserID            string          `json:"user_id"`
	Balance           decimal.Decimal `json:"balance"`
	CommissionBalance decimal.Decimal `json:"commission_balance"`
}

// SettlementResult summarizes a finalized sale
type SettlementResult struct {
	ProductID        string          `json:"product_id"`
	SellerID         string          `json:"seller_id"`
	WinningBidderID  string          `json:"winning_bidder_id"`
	FinalPrice       decimal.Decimal `json:"final_price"`
	CommissionRate   int64           `json:"commission_rate"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	SoldAt           time.Time       `json:"sold_at"`
}
