package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	bidding "auction-house/internal/biddingService"
	"auction-house/internal/locking"
	model "auction-house/internal/models"
	"auction-house/internal/notification"
	product "auction-house/internal/productService"
	"auction-house/internal/repository"
	"auction-house/internal/server"
	"auction-house/internal/settlement"
	"auction-house/utils"
)

func main() {

	repo := repository.NewMemoryRepo()

	prepopulateAccounts(repo)

	locks := locking.NewKeyedMutex()
	biddingSvc := bidding.NewBiddingService(repo, locks)
	settlementEngine := settlement.NewSettlementEngine(repo, locks, buildGateway())
	productSvc := product.NewProductService(repo, locks)

	router := server.SetupRouter(biddingSvc, settlementEngine, productSvc)

	port := getPort()
	fmt.Printf("Starting auction server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// prepopulateAccounts seeds the platform account and a few sample users
func prepopulateAccounts(repo *repository.MemoryRepo) {
	platform := model.Account{
		UserID: "platform",
		Name:   "Auction House",
		Email:  "admin@auction-house.local",
		Role:   model.RoleAdmin,
	}
	if err := repo.SetPlatformAccount(platform); err != nil {
		utils.Fatal("failed to register platform account", map[string]any{"error": err.Error()})
	}

	accounts := []model.Account{
		{UserID: "seller1", Name: "Sample Seller", Email: "seller1@example.com", Role: model.RoleSeller},
		{UserID: "buyer1", Name: "Sample Buyer", Email: "buyer1@example.com", Role: model.RoleBuyer},
		{UserID: "buyer2", Name: "Another Buyer", Email: "buyer2@example.com", Role: model.RoleBuyer},
	}
	for _, a := range accounts {
		a.Balance = decimal.Zero
		a.CommissionBalance = decimal.Zero
		if err := repo.SaveAccount(a); err != nil {
			utils.Fatal("failed to seed account", map[string]any{"user_id": a.UserID, "error": err.Error()})
		}
	}
}

// buildGateway returns an SMTP notification gateway when SMTP_HOST is set,
// otherwise a log-only gateway
func buildGateway() notification.Gateway {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return notification.NewLogGateway()
	}
	return notification.NewSMTPGateway(notification.EmailConfig{
		Host:        host,
		Port:        envOr("SMTP_PORT", "587"),
		Username:    os.Getenv("SMTP_USERNAME"),
		Password:    os.Getenv("SMTP_PASSWORD"),
		FromName:    envOr("SMTP_FROM_NAME", "Bidding"),
		FromAddress: envOr("SMTP_FROM_EMAIL", "non_reply@auction-house.local"),
	})
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
