package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	bidding "auction-house/internal/biddingService"
	"auction-house/internal/locking"
	model "auction-house/internal/models"
	"auction-house/internal/notification"
	product "auction-house/internal/productService"
	"auction-house/internal/repository"
	"auction-house/internal/server"
	"auction-house/internal/settlement"
)

// SetupTestRouter initializes the router with an in-memory repository seeded
// with the platform account and a few users, for integration testing.
func SetupTestRouter(t *testing.T) (*gin.Engine, *repository.MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	if err := repo.SetPlatformAccount(model.Account{
		UserID: "platform", Name: "Auction House", Email: "admin@example.com", Role: model.RoleAdmin,
	}); err != nil {
		t.Fatalf("failed to seed platform account: %v", err)
	}

	accounts := []model.Account{
		{UserID: "admin1", Name: "Admin", Email: "admin1@example.com", Role: model.RoleAdmin},
		{UserID: "seller1", Name: "Seller", Email: "seller1@example.com", Role: model.RoleSeller},
		{UserID: "buyer1", Name: "Buyer One", Email: "buyer1@example.com", Role: model.RoleBuyer},
		{UserID: "buyer2", Name: "Buyer Two", Email: "buyer2@example.com", Role: model.RoleBuyer},
	}
	for _, a := range accounts {
		a.Balance = decimal.Zero
		a.CommissionBalance = decimal.Zero
		if err := repo.SaveAccount(a); err != nil {
			t.Fatalf("failed to seed account %s: %v", a.UserID, err)
		}
	}

	locks := locking.NewKeyedMutex()
	biddingSvc := bidding.NewBiddingService(repo, locks)
	engine := settlement.NewSettlementEngine(repo, locks, notification.NewLogGateway())
	productSvc := product.NewProductService(repo, locks)

	router := server.SetupRouter(biddingSvc, engine, productSvc)
	return router, repo
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the JSON response envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// data extracts the data object from a response envelope
func data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	d, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return d
}
