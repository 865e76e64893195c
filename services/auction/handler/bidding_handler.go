package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"
	"auction-house/utils"
)

type BiddingServiceInterface interface {
	PlaceBid(productID, bidderID string, amount decimal.Decimal) (model.Bid, error)
	GetBiddingHistory(productID string) ([]model.Bid, error)
	GetWinningBid(productID string) (model.Bid, error)
	GetBidAuditTrail(productID string) ([]model.Bid, error)
}

type SettlementEngineInterface interface {
	Sell(productID, requesterID string) (model.SettlementResult, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
	engine  SettlementEngineInterface
}

func NewBiddingHandler(service BiddingServiceInterface, engine SettlementEngineInterface) *BiddingHandler {
	return &BiddingHandler{service: service, engine: engine}
}

// PlaceBidHandler handles POST /bids
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(req.ProductID, req.BidderID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":    "PlaceBidHandler",
			"product_id": req.ProductID,
			"bidder_id":  req.BidderID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, toBidResponse(bid), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.BidID,
		"product_id": bid.ProductID,
		"bidder_id":  bid.BidderID,
		"amount":     bid.Amount.String(),
	})
}

// SellProductHandler handles POST /bids/sell
func (h *BiddingHandler) SellProductHandler(c *gin.Context) {
	var req helpers.SellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SellProductHandler", err)
		return
	}

	result, err := h.engine.Sell(req.ProductID, req.RequesterID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("SellProductHandler: failed to sell product", map[string]any{
			"handler":      "SellProductHandler",
			"product_id":   req.ProductID,
			"requester_id": req.RequesterID,
			"error":        err.Error(),
		})
		return
	}

	resp := helpers.SettlementResponse{
		ProductID:        result.ProductID,
		SellerID:         result.SellerID,
		WinningBidderID:  result.WinningBidderID,
		FinalPrice:       result.FinalPrice,
		CommissionRate:   result.CommissionRate,
		CommissionAmount: result.CommissionAmount,
		SoldAt:           result.SoldAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusOK, resp, "product has been sold successfully")
	helpers.LogSuccess("SellProductHandler", "product sold successfully", map[string]any{
		"product_id":        result.ProductID,
		"winning_bidder_id": result.WinningBidderID,
		"final_price":       result.FinalPrice.String(),
	})
}

// GetBiddingHistoryHandler handles GET /products/:product_id/bids
func (h *BiddingHandler) GetBiddingHistoryHandler(c *gin.Context) {
	productID := c.Param("product_id")
	bids, err := h.service.GetBiddingHistory(productID)
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBiddingHistoryHandler: error retrieving bids", map[string]any{"product_id": productID, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBiddingHistoryHandler", "bids retrieved successfully", map[string]any{
		"product_id": productID,
		"count":      len(bids),
	})
}

// GetWinningBidHandler handles GET /products/:product_id/winning
func (h *BiddingHandler) GetWinningBidHandler(c *gin.Context) {
	productID := c.Param("product_id")
	bid, err := h.service.GetWinningBid(productID)
	if err != nil {
		// For auction, winning bid not found -> 404
		if errors.Is(err, auctionerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no winning bid found")
			utils.Info("GetWinningBidHandler: no winning bid found", map[string]any{"product_id": productID})
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetWinningBidHandler: winning bid error", map[string]any{"product_id": productID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, toBidResponse(bid), "winning bid retrieved successfully")
	helpers.LogSuccess("GetWinningBidHandler", "winning bid retrieved successfully", map[string]any{
		"bid_id":     bid.BidID,
		"product_id": bid.ProductID,
		"bidder_id":  bid.BidderID,
		"amount":     bid.Amount.String(),
	})
}

// GetBidAuditTrailHandler handles GET /products/:product_id/bids/audit
func (h *BiddingHandler) GetBidAuditTrailHandler(c *gin.Context) {
	productID := c.Param("product_id")
	trail, err := h.service.GetBidAuditTrail(productID)
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidAuditTrailHandler: error retrieving audit trail", map[string]any{"product_id": productID, "error": err.Error()})
		return
	}

	if trail == nil {
		trail = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, trail, "bid audit trail retrieved successfully")
	helpers.LogSuccess("GetBidAuditTrailHandler", "bid audit trail retrieved successfully", map[string]any{
		"product_id": productID,
		"count":      len(trail),
	})
}

func toBidResponse(bid model.Bid) helpers.BidResponse {
	return helpers.BidResponse{
		BidID:     bid.BidID,
		ProductID: bid.ProductID,
		BidderID:  bid.BidderID,
		Amount:    bid.Amount,
		PlacedAt:  bid.PlacedAt.UTC().Format(time.RFC3339),
		UpdatedAt: bid.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
