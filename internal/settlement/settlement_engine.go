package settlement

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/locking"
	"auction-house/internal/models"
	"auction-house/internal/notification"
	"auction-house/internal/repository"
	"auction-house/utils"
)

var oneHundred = decimal.NewFromInt(100)

// SettlementEngine finalizes auctions: it reads the winning bid, transitions
// the product to sold, credits the seller with the full final price, and
// accrues the commission on the platform account. The seller is paid the full
// bid amount; commission is an additional platform credit, not a deduction.
type SettlementEngine struct {
	repo    repository.AuctionDB
	locks   *locking.KeyedMutex
	gateway notification.Gateway
}

// NewSettlementEngine creates a new SettlementEngine instance. The keyed
// mutex must be the same instance the bidding service uses, so a sale and a
// racing bid on one product serialize.
func NewSettlementEngine(repo repository.AuctionDB, locks *locking.KeyedMutex, gateway notification.Gateway) *SettlementEngine {
	return &SettlementEngine{
		repo:    repo,
		locks:   locks,
		gateway: gateway,
	}
}

// Sell finalizes the auction for a product on behalf of its seller. The
// product transitions to sold exactly once; every validation runs before the
// first write, so a failed sale leaves no observable effect. Repeat calls
// fail with ErrAlreadySold and touch nothing.
func (e *SettlementEngine) Sell(productID, requesterID string) (models.SettlementResult, error) {
	if productID == "" || requesterID == "" {
		return models.SettlementResult{}, fmt.Errorf("engine: %w - missing productID or requesterID", auctionerrors.ErrInvalidProduct)
	}

	unlock := e.locks.Lock(productID)
	defer unlock()

	product, err := e.repo.GetProduct(productID)
	if err != nil {
		return models.SettlementResult{}, fmt.Errorf("engine: failed to load product %s: %w", productID, err)
	}

	if product.SellerID != requesterID {
		return models.SettlementResult{}, fmt.Errorf("engine: product %s: %w", productID, auctionerrors.ErrNotOwner)
	}

	switch product.State {
	case models.StateSold:
		return models.SettlementResult{}, fmt.Errorf("engine: product %s: %w", productID, auctionerrors.ErrAlreadySold)
	case models.StateOpen:
		return models.SettlementResult{}, fmt.Errorf("engine: product %s: %w", productID, auctionerrors.ErrNotVerified)
	}

	winningBid, err := e.repo.GetWinningBid(productID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrNoBids) {
			return models.SettlementResult{}, fmt.Errorf("engine: product %s: %w", productID, auctionerrors.ErrNoWinningBid)
		}
		return models.SettlementResult{}, fmt.Errorf("engine: failed to get winning bid for product %s: %w", productID, err)
	}

	finalPrice := winningBid.Amount
	commissionAmount := decimal.NewFromInt(product.CommissionRate).Mul(finalPrice).Div(oneHundred).Round(2)

	// The seller account is resolved before any write so a missing seller
	// aborts the sale with zero side effects.
	seller, err := e.repo.GetAccount(product.SellerID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrAccountNotFound) {
			return models.SettlementResult{}, fmt.Errorf("engine: product %s: %w", productID, auctionerrors.ErrSellerNotFound)
		}
		return models.SettlementResult{}, fmt.Errorf("engine: failed to load seller account for product %s: %w", productID, err)
	}

	platform, platformErr := e.repo.GetPlatformAccount()
	if platformErr != nil && !errors.Is(platformErr, auctionerrors.ErrPlatformAccountNotFound) {
		return models.SettlementResult{}, fmt.Errorf("engine: failed to load platform account: %w", platformErr)
	}
	if platformErr != nil {
		// No platform account: the commission is not accrued anywhere and the
		// sale still goes through.
		utils.Warn("settlement: no platform account, commission not accrued", map[string]any{
			"product_id": productID,
			"commission": commissionAmount.String(),
		})
	}

	if err := product.MarkSold(winningBid.BidderID, finalPrice); err != nil {
		return models.SettlementResult{}, fmt.Errorf("engine: product %s: %w", productID, err)
	}

	// Credits are deltas applied inside the store's critical section. A
	// concurrent sale of a different product sharing the seller or the
	// platform account adds to the same balances instead of overwriting them.
	credits := []models.AccountCredit{{UserID: seller.UserID, Balance: finalPrice}}
	if platformErr == nil {
		credits = append(credits, models.AccountCredit{UserID: platform.UserID, CommissionBalance: commissionAmount})
	}

	if err := e.repo.ApplySettlement(product, credits...); err != nil {
		return models.SettlementResult{}, fmt.Errorf("engine: failed to apply settlement for product %s: %w", productID, err)
	}

	result := models.SettlementResult{
		ProductID:        product.ProductID,
		SellerID:         product.SellerID,
		WinningBidderID:  winningBid.BidderID,
		FinalPrice:       finalPrice,
		CommissionRate:   product.CommissionRate,
		CommissionAmount: commissionAmount,
		SoldAt:           time.Now().UTC(),
	}

	utils.Info("settlement: product sold", map[string]any{
		"product_id":        result.ProductID,
		"winning_bidder_id": result.WinningBidderID,
		"final_price":       result.FinalPrice.String(),
		"commission":        result.CommissionAmount.String(),
	})

	// Notifications run outside the settled path; a slow or failing mail
	// server cannot delay or undo the sale.
	go e.dispatchNotifications(product, seller, winningBid)

	return result, nil
}

// dispatchNotifications emails the winning bidder and the seller after a
// successful sale. All failures are logged and swallowed.
func (e *SettlementEngine) dispatchNotifications(product models.Product, seller models.Account, winningBid models.Bid) {
	winner, err := e.repo.GetAccount(winningBid.BidderID)
	if err != nil {
		utils.Warn("settlement: winner account not found, skipping notification", map[string]any{
			"product_id": product.ProductID,
			"bidder_id":  winningBid.BidderID,
		})
	} else if winner.Email != "" {
		e.notify(winner.Email, "Congratulations! You won the auction!",
			fmt.Sprintf("Congratulations! You won the auction for the product %q with a bid of $%s.", product.Title, product.FinalPrice))
	}

	if seller.Email != "" {
		e.notify(seller.Email, "Your product has been sold!",
			fmt.Sprintf("Your product %q has been sold for $%s.", product.Title, product.FinalPrice))
	}
}

func (e *SettlementEngine) notify(email, subject, body string) {
	if err := e.gateway.Notify(email, subject, body); err != nil {
		utils.Error("settlement: failed to send notification", map[string]any{
			"email":   email,
			"subject": subject,
			"error":   err.Error(),
		})
	}
}
