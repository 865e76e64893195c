package product

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

// ProductService defines the business logic for the product lifecycle:
// sellers create listings, admins verify them and set the commission rate,
// and everyone can query them. State transitions run under the same
// per-product lock the bidding service and the settlement engine use, so a
// verification can never interleave with a sale of the same product.
type ProductService struct {
	repo  repository.AuctionDB
	locks *locking.KeyedMutex
}

// NewProductService creates a new ProductService instance. The keyed mutex
// must be the instance shared with the bidding service and the settlement
// engine.
func NewProductService(repo repository.AuctionDB, locks *locking.KeyedMutex) *ProductService {
	return &ProductService{
		repo:  repo,
		locks: locks,
	}
}

// CreateProduct lists a new product for the given seller. The product starts
// open; bidding only becomes possible once an admin verifies it.
func (s *ProductService) CreateProduct(sellerID, title, description, category string, startingPrice decimal.Decimal) (models.Product, error) {
	if sellerID == "" || title == "" || description == "" || category == "" {
		return models.Product{}, fmt.Errorf("service: %w - missing required fields", auctionerrors.ErrInvalidProduct)
	}
	if !startingPrice.IsPositive() {
		return models.Product{}, fmt.Errorf("service: %w - non-positive starting price", auctionerrors.ErrInvalidProduct)
	}

	seller, err := s.repo.GetAccount(sellerID)
	if err != nil {
		return models.Product{}, fmt.Errorf("service: failed to load seller account %s: %w", sellerID, err)
	}
	if seller.Role != models.RoleSeller && seller.Role != models.RoleAdmin {
		return models.Product{}, fmt.Errorf("service: account %s: %w", sellerID, auctionerrors.ErrNotSeller)
	}

	product := models.Product{
		ProductID:     utils.GenerateID(),
		SellerID:      sellerID,
		Title:         title,
		Description:   description,
		Category:      category,
		StartingPrice: startingPrice,
		State:         models.StateOpen,
		CreatedAt:     time.Now().UTC(),
	}

	// The store enforces slug uniqueness inside its insert critical section;
	// a concurrent create racing us to the same slug surfaces as ErrSlugTaken
	// and we pick the next suffix.
	for {
		slug, err := s.uniqueSlug(title)
		if err != nil {
			return models.Product{}, fmt.Errorf("service: failed to derive slug for %q: %w", title, err)
		}
		product.Slug = slug

		err = s.repo.SaveProduct(product)
		if errors.Is(err, auctionerrors.ErrSlugTaken) {
			continue
		}
		if err != nil {
			return models.Product{}, fmt.Errorf("service: failed to save product %s: %w", product.ProductID, err)
		}
		return product, nil
	}
}

// uniqueSlug derives a slug from the title, suffixing a counter on collision
func (s *ProductService) uniqueSlug(title string) (string, error) {
	base := utils.Slugify(title)
	slug := base
	for suffix := 1; ; suffix++ {
		taken, err := s.repo.SlugExists(slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, suffix)
	}
}

// VerifyProduct flips a product to the verified state and sets its commission
// rate. Only admins may verify; a sold product can never be verified again.
func (s *ProductService) VerifyProduct(productID, adminID string, commissionRate int64) (models.Product, error) {
	if productID == "" || adminID == "" {
		return models.Product{}, fmt.Errorf("service: %w - missing productID or adminID", auctionerrors.ErrInvalidProduct)
	}

	admin, err := s.repo.GetAccount(adminID)
	if err != nil {
		return models.Product{}, fmt.Errorf("service: failed to load account %s: %w", adminID, err)
	}
	if admin.Role != models.RoleAdmin {
		return models.Product{}, fmt.Errorf("service: account %s: %w", adminID, auctionerrors.ErrNotAdmin)
	}

	// The load-verify-save must not interleave with a racing sale: a stale
	// Verified snapshot saved after the sale commits would revert a Sold
	// product.
	unlock := s.locks.Lock(productID)
	defer unlock()

	product, err := s.repo.GetProduct(productID)
	if err != nil {
		return models.Product{}, fmt.Errorf("service: failed to load product %s: %w", productID, err)
	}

	if err := product.Verify(commissionRate); err != nil {
		return models.Product{}, fmt.Errorf("service: product %s: %w", productID, err)
	}

	if err := s.repo.SaveProduct(product); err != nil {
		return models.Product{}, fmt.Errorf("service: failed to save product %s: %w", productID, err)
	}

	utils.Info("product verified", map[string]any{
		"product_id":      productID,
		"admin_id":        adminID,
		"commission_rate": commissionRate,
	})

	return product, nil
}

// GetProduct returns a single product by ID
func (s *ProductService) GetProduct(productID string) (models.Product, error) {
	if productID == "" {
		return models.Product{}, fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrInvalidProduct)
	}

	product, err := s.repo.GetProduct(productID)
	if err != nil {
		return models.Product{}, fmt.Errorf("service: failed to get product %s: %w", productID, err)
	}
	return product, nil
}

// ListProducts returns all products, newest first
func (s *ProductService) ListProducts() ([]models.Product, error) {
	products, err := s.repo.ListProducts()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list products: %w", err)
	}
	return products, nil
}

// ListSellerProducts returns all products listed by a seller, newest first
func (s *ProductService) ListSellerProducts(sellerID string) ([]models.Product, error) {
	if sellerID == "" {
		return nil, fmt.Errorf("service: %w - empty seller ID", auctionerrors.ErrInvalidProduct)
	}

	products, err := s.repo.ListProductsBySeller(sellerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list products for seller %s: %w", sellerID, err)
	}
	return products, nil
}

// ListSoldProducts returns all sold products, newest first
func (s *ProductService) ListSoldProducts() ([]models.Product, error) {
	products, err := s.repo.ListSoldProducts()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list sold products: %w", err)
	}
	return products, nil
}

// ListWonProducts returns all products won by the given bidder, newest first
func (s *ProductService) ListWonProducts(bidderID string) ([]models.Product, error) {
	if bidderID == "" {
		return nil, fmt.Errorf("service: %w - empty bidder ID", auctionerrors.ErrInvalidProduct)
	}

	products, err := s.repo.ListWonProducts(bidderID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list won products for %s: %w", bidderID, err)
	}
	return products, nil
}

// GetAccount returns a user's account snapshot
func (s *ProductService) GetAccount(userID string) (models.Account, error) {
	if userID == "" {
		return models.Account{}, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidProduct)
	}

	account, err := s.repo.GetAccount(userID)
	if err != nil {
		return models.Account{}, fmt.Errorf("service: failed to get account %s: %w", userID, err)
	}
	return account, nil
}
