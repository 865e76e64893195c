package bidding

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/locking"
	"auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/utils"
)

// BiddingService defines the business logic for auction bidding. All mutations
// for a product run under that product's lock so the highest-bid check and the
// write behave as one step even under concurrent bidders.
type BiddingService struct {
	repo  repository.AuctionDB
	locks *locking.KeyedMutex
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.AuctionDB, locks *locking.KeyedMutex) *BiddingService {
	return &BiddingService{
		repo:  repo,
		locks: locks,
	}
}

// PlaceBid validates and records a bidder's standing bid on a product. A
// bidder raising their own bid only has to beat their previous amount; a new
// bidder has to beat the current highest bid. Both comparisons are strict, so
// the highest bid is always unique.
func (s *BiddingService) PlaceBid(productID, bidderID string, amount decimal.Decimal) (models.Bid, error) {
	if productID == "" || bidderID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing productID or bidderID", auctionerrors.ErrInvalidBid)
	}
	if !amount.IsPositive() {
		return models.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}

	unlock := s.locks.Lock(productID)
	defer unlock()

	product, err := s.repo.GetProduct(productID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to load product %s: %w", productID, err)
	}
	if err := product.AcceptingBids(); err != nil {
		return models.Bid{}, fmt.Errorf("service: product %s: %w", productID, err)
	}

	now := time.Now().UTC()

	existing, err := s.repo.GetBidByBidder(productID, bidderID)
	switch {
	case err == nil:
		// Raising an existing bid: only the bidder's own previous amount matters.
		if amount.LessThanOrEqual(existing.Amount) {
			return models.Bid{}, fmt.Errorf("service: %w - your previous bid is %s", auctionerrors.ErrBidTooLow, existing.Amount)
		}
		existing.Amount = amount
		existing.UpdatedAt = now

		if err := s.repo.RecordBid(existing); err != nil {
			return models.Bid{}, fmt.Errorf("service: failed to record bid for product %s by %s: %w", productID, bidderID, err)
		}
		return existing, nil

	case errors.Is(err, auctionerrors.ErrNoBids):
		winning, err := s.repo.GetWinningBid(productID)
		if err == nil {
			if amount.LessThanOrEqual(winning.Amount) {
				return models.Bid{}, fmt.Errorf("service: %w - current highest bid is %s", auctionerrors.ErrBidTooLow, winning.Amount)
			}
		} else if !errors.Is(err, auctionerrors.ErrNoBids) {
			return models.Bid{}, fmt.Errorf("service: failed to check winning bid: %w", err)
		}

	default:
		return models.Bid{}, fmt.Errorf("service: failed to check existing bid: %w", err)
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		ProductID: productID,
		BidderID:  bidderID,
		Amount:    amount,
		PlacedAt:  now,
		UpdatedAt: now,
	}

	if err := s.repo.RecordBid(bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid for product %s by %s: %w", productID, bidderID, err)
	}

	return bid, nil
}

// GetBiddingHistory returns all standing bids for a product, newest first
func (s *BiddingService) GetBiddingHistory(productID string) ([]models.Bid, error) {
	if productID == "" {
		return nil, fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrInvalidBid)
	}

	bids, err := s.repo.GetBidsByProduct(productID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for product %s: %w", productID, err)
	}

	return bids, nil
}

// GetWinningBid returns the highest standing bid for a product
func (s *BiddingService) GetWinningBid(productID string) (models.Bid, error) {
	if productID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrInvalidBid)
	}

	winningBid, err := s.repo.GetWinningBid(productID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get winning bid for product %s: %w", productID, err)
	}

	return winningBid, nil
}

// GetBidAuditTrail returns every accepted bid version for a product, oldest
// first. The trail keeps the amounts a rebid overwrote in the standing view.
func (s *BiddingService) GetBidAuditTrail(productID string) ([]models.Bid, error) {
	if productID == "" {
		return nil, fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrInvalidBid)
	}

	trail, err := s.repo.GetBidAuditTrail(productID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bid audit trail for product %s: %w", productID, err)
	}

	return trail, nil
}
