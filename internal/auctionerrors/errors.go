package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrProductNotFound         = errors.New("product not found")
	ErrAccountNotFound         = errors.New("account not found")
	ErrPlatformAccountNotFound = errors.New("platform account not configured")
	ErrNoBids                  = errors.New("no bids found for product")
	ErrSlugTaken               = errors.New("slug already in use")
)

// business logic errors
var (
	ErrInvalidBid        = errors.New("invalid bid")
	ErrBidTooLow         = errors.New("bid amount too low")
	ErrNotVerified       = errors.New("product is not verified for bidding")
	ErrAlreadySold       = errors.New("product has already been sold")
	ErrNoWinningBid      = errors.New("no winning bid found for product")
	ErrSellerNotFound    = errors.New("seller account not found")
	ErrInvalidCommission = errors.New("commission rate must be between 0 and 100")
	ErrInvalidProduct    = errors.New("invalid product details")
)

// authorization errors
var (
	ErrNotOwner  = errors.New("requester does not own this product")
	ErrNotAdmin  = errors.New("requester is not an admin")
	ErrNotSeller = errors.New("requester is not a seller")
)
