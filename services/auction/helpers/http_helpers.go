package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-house/internal/auctionerrors"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrProductNotFound):
		return http.StatusNotFound, "product not found"
	case errors.Is(err, auctionerrors.ErrSellerNotFound):
		return http.StatusNotFound, "seller account not found"
	case errors.Is(err, auctionerrors.ErrAccountNotFound):
		return http.StatusNotFound, "account not found"
	case errors.Is(err, auctionerrors.ErrNotOwner):
		return http.StatusForbidden, "not authorized to sell this product"
	case errors.Is(err, auctionerrors.ErrNotAdmin):
		return http.StatusForbidden, "admin privileges required"
	case errors.Is(err, auctionerrors.ErrNotSeller):
		return http.StatusForbidden, "seller privileges required"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, auctionerrors.ErrInvalidProduct):
		return http.StatusBadRequest, "invalid product details"
	case errors.Is(err, auctionerrors.ErrInvalidCommission):
		return http.StatusBadRequest, "invalid commission rate"
	case errors.Is(err, auctionerrors.ErrNotVerified):
		return http.StatusBadRequest, "bidding is not verified for this product"
	case errors.Is(err, auctionerrors.ErrAlreadySold):
		return http.StatusBadRequest, "bidding is closed for this product"
	case errors.Is(err, auctionerrors.ErrNoWinningBid):
		return http.StatusBadRequest, "no winning bid found for the product"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusNotFound, "no bids found for product"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
