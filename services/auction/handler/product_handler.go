package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"
	"auction-house/utils"
)

type ProductServiceInterface interface {
	CreateProduct(sellerID, title, description, category string, startingPrice decimal.Decimal) (model.Product, error)
	VerifyProduct(productID, adminID string, commissionRate int64) (model.Product, error)
	GetProduct(productID string) (model.Product, error)
	ListProducts() ([]model.Product, error)
	ListSellerProducts(sellerID string) ([]model.Product, error)
	ListSoldProducts() ([]model.Product, error)
	ListWonProducts(bidderID string) ([]model.Product, error)
	GetAccount(userID string) (model.Account, error)
}

type ProductHandler struct {
	service ProductServiceInterface
}

func NewProductHandler(service ProductServiceInterface) *ProductHandler {
	return &ProductHandler{service: service}
}

// CreateProductHandler handles POST /products
func (h *ProductHandler) CreateProductHandler(c *gin.Context) {
	var req helpers.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateProductHandler", err)
		return
	}

	product, err := h.service.CreateProduct(req.SellerID, req.Title, req.Description, req.Category, req.StartingPrice)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateProductHandler: failed to create product", map[string]any{
			"handler":   "CreateProductHandler",
			"seller_id": req.SellerID,
			"title":     req.Title,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, product, "product created successfully")
	helpers.LogSuccess("CreateProductHandler", "product created successfully", map[string]any{
		"product_id": product.ProductID,
		"seller_id":  product.SellerID,
		"slug":       product.Slug,
	})
}

// VerifyProductHandler handles PATCH /products/:product_id/verify
func (h *ProductHandler) VerifyProductHandler(c *gin.Context) {
	var req helpers.VerifyProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "VerifyProductHandler", err)
		return
	}

	productID := c.Param("product_id")
	product, err := h.service.VerifyProduct(productID, req.AdminID, req.Commission)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("VerifyProductHandler: failed to verify product", map[string]any{
			"handler":    "VerifyProductHandler",
			"product_id": productID,
			"admin_id":   req.AdminID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, product, "product verified successfully")
	helpers.LogSuccess("VerifyProductHandler", "product verified successfully", map[string]any{
		"product_id":      product.ProductID,
		"commission_rate": product.CommissionRate,
	})
}

// GetProductHandler handles GET /products/:product_id
func (h *ProductHandler) GetProductHandler(c *gin.Context) {
	productID := c.Param("product_id")
	product, err := h.service.GetProduct(productID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetProductHandler: error retrieving product", map[string]any{"product_id": productID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, product, "product retrieved successfully")
}

// ListProductsHandler handles GET /products
func (h *ProductHandler) ListProductsHandler(c *gin.Context) {
	products, err := h.service.ListProducts()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListProductsHandler: error listing products", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, products, "products retrieved successfully")
}

// ListSellerProductsHandler handles GET /products/user/:user_id
func (h *ProductHandler) ListSellerProductsHandler(c *gin.Context) {
	sellerID := c.Param("user_id")
	products, err := h.service.ListSellerProducts(sellerID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListSellerProductsHandler: error listing products", map[string]any{"user_id": sellerID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, products, "products retrieved successfully")
}

// ListSoldProductsHandler handles GET /products/sold
func (h *ProductHandler) ListSoldProductsHandler(c *gin.Context) {
	products, err := h.service.ListSoldProducts()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListSoldProductsHandler: error listing sold products", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, products, "sold products retrieved successfully")
}

// ListWonProductsHandler handles GET /products/won/:user_id
func (h *ProductHandler) ListWonProductsHandler(c *gin.Context) {
	bidderID := c.Param("user_id")
	products, err := h.service.ListWonProducts(bidderID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListWonProductsHandler: error listing won products", map[string]any{"user_id": bidderID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, products, "won products retrieved successfully")
}

// GetAccountHandler handles GET /accounts/:user_id
func (h *ProductHandler) GetAccountHandler(c *gin.Context) {
	userID := c.Param("user_id")
	account, err := h.service.GetAccount(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAccountHandler: error retrieving account", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, account, "account retrieved successfully")
}
