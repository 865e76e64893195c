package server

import (
	"github.com/gin-gonic/gin"

	bidding "auction-house/internal/biddingService"
	product "auction-house/internal/productService"
	"auction-house/internal/settlement"
	handler "auction-house/services/auction/handler"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(biddingService *bidding.BiddingService, settlementEngine *settlement.SettlementEngine, productService *product.ProductService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	biddingHandler := handler.NewBiddingHandler(biddingService, settlementEngine)
	productHandler := handler.NewProductHandler(productService)

	bids := router.Group("/bids")
	{
		bids.POST("", biddingHandler.PlaceBidHandler)
		bids.POST("/sell", biddingHandler.SellProductHandler)
	}

	products := router.Group("/products")
	{
		products.POST("", productHandler.CreateProductHandler)
		products.GET("", productHandler.ListProductsHandler)
		products.GET("/sold", productHandler.ListSoldProductsHandler)
		products.GET("/won/:user_id", productHandler.ListWonProductsHandler)
		products.GET("/user/:user_id", productHandler.ListSellerProductsHandler)
		products.GET("/:product_id", productHandler.GetProductHandler)
		products.PATCH("/:product_id/verify", productHandler.VerifyProductHandler)
		products.GET("/:product_id/bids", biddingHandler.GetBiddingHistoryHandler)
		products.GET("/:product_id/bids/audit", biddingHandler.GetBidAuditTrailHandler)
		products.GET("/:product_id/winning", biddingHandler.GetWinningBidHandler)
	}

	accounts := router.Group("/accounts")
	{
		accounts.GET("/:user_id", productHandler.GetAccountHandler)
	}

	return router
}
