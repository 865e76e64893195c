package helpers

import "github.com/shopspring/decimal"

// Request/Response DTOs
type PlaceBidRequest struct {
	ProductID string          `json:"product_id" binding:"required"`
	BidderID  string          `json:"bidder_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
}

type SellRequest struct {
	ProductID   string `json:"product_id" binding:"required"`
	RequesterID string `json:"requester_id" binding:"required"`
}

type CreateProductRequest struct {
	SellerID      string          `json:"seller_id" binding:"required"`
	Title         string          `json:"title" binding:"required"`
	Description   string          `json:"description" binding:"required"`
	Category      string          `json:"category" binding:"required"`
	StartingPrice decimal.Decimal `json:"starting_price" binding:"required"`
}

type VerifyProductRequest struct {
	AdminID    string `json:"admin_id" binding:"required"`
	Commission int64  `json:"commission" binding:"min=0,max=100"`
}

type BidResponse struct {
	BidID     string          `json:"bid_id"`
	ProductID string          `json:"product_id"`
	BidderID  string          `json:"bidder_id"`
	Amount    decimal.Decimal `json:"amount"`
	PlacedAt  string          `json:"placed_at"`
	UpdatedAt string          `json:"updated_at"`
}

type SettlementResponse struct {
	ProductID        string          `json:"product_id"`
	SellerID         string          `json:"seller_id"`
	WinningBidderID  string          `json:"winning_bidder_id"`
	FinalPrice       decimal.Decimal `json:"final_price"`
	CommissionRate   int64           `json:"commission_rate"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	SoldAt           string          `json:"sold_at"`
}
