package settlement

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"auction-house/internal/auctionerrors"
	bidding "auction-house/internal/biddingService"
	"auction-house/internal/locking"
	model "auction-house/internal/models"
	"auction-house/internal/repository"
)

type sentMail struct {
	email   string
	subject string
}

// recordingGateway captures notifications for assertions
type recordingGateway struct {
	mu   sync.Mutex
	sent []sentMail
}

func (g *recordingGateway) Notify(email, subject, body string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sent = append(g.sent, sentMail{email: email, subject: subject})
	return nil
}

func (g *recordingGateway) count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.sent)
}

func (g *recordingGateway) snapshot() []sentMail {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]sentMail(nil), g.sent...)
}

// failingGateway always errors
type failingGateway struct{}

func (g *failingGateway) Notify(email, subject, body string) error {
	return fmt.Errorf("smtp unreachable")
}

type fixture struct {
	repo    *repository.MemoryRepo
	locks   *locking.KeyedMutex
	gateway *recordingGateway
	engine  *SettlementEngine
	bidding *bidding.BiddingService
}

// newFixture seeds a platform account, a seller, two buyers, and one verified
// product with commission rate 10.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := repository.NewMemoryRepo()
	require.NoError(t, repo.SetPlatformAccount(model.Account{
		UserID: "platform", Name: "Auction House", Email: "admin@example.com", Role: model.RoleAdmin,
	}))
	require.NoError(t, repo.SaveAccount(model.Account{
		UserID: "seller1", Name: "Seller", Email: "seller1@example.com", Role: model.RoleSeller,
	}))
	require.NoError(t, repo.SaveAccount(model.Account{
		UserID: "buyer1", Name: "Buyer One", Email: "buyer1@example.com", Role: model.RoleBuyer,
	}))
	require.NoError(t, repo.SaveAccount(model.Account{
		UserID: "buyer2", Name: "Buyer Two", Email: "buyer2@example.com", Role: model.RoleBuyer,
	}))
	require.NoError(t, repo.SaveProduct(model.Product{
		ProductID:      "p1",
		SellerID:       "seller1",
		Title:          "Antique Clock",
		Slug:           "antique-clock",
		Description:    "A clock",
		Category:       "All",
		StartingPrice:  decimal.NewFromInt(50),
		CommissionRate: 10,
		State:          model.StateVerified,
		CreatedAt:      time.Now().UTC(),
	}))

	locks := locking.NewKeyedMutex()
	gateway := &recordingGateway{}
	return &fixture{
		repo:    repo,
		locks:   locks,
		gateway: gateway,
		engine:  NewSettlementEngine(repo, locks, gateway),
		bidding: bidding.NewBiddingService(repo, locks),
	}
}

func (f *fixture) placeBid(t *testing.T, bidderID string, amount int64) {
	t.Helper()
	_, err := f.bidding.PlaceBid("p1", bidderID, decimal.NewFromInt(amount))
	require.NoError(t, err)
}

func TestSettlementEngine_Sell(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.placeBid(t, "buyer1", 100)
	f.placeBid(t, "buyer2", 250)

	result, err := f.engine.Sell("p1", "seller1")
	require.NoError(t, err)

	require.Equal(t, "p1", result.ProductID)
	require.Equal(t, "buyer2", result.WinningBidderID)
	require.True(t, result.FinalPrice.Equal(decimal.NewFromInt(250)))
	require.True(t, result.CommissionAmount.Equal(decimal.NewFromInt(25)), "10%% of 250 must be 25, got %s", result.CommissionAmount)

	// Product is permanently sold with the winner recorded
	product, err := f.repo.GetProduct("p1")
	require.NoError(t, err)
	require.Equal(t, model.StateSold, product.State)
	require.Equal(t, "buyer2", product.WinningBidderID)
	require.True(t, product.FinalPrice.Equal(decimal.NewFromInt(250)))

	// Seller receives the full final price; commission is an extra platform
	// credit, not a deduction.
	seller, err := f.repo.GetAccount("seller1")
	require.NoError(t, err)
	require.True(t, seller.Balance.Equal(decimal.NewFromInt(250)))

	platform, err := f.repo.GetPlatformAccount()
	require.NoError(t, err)
	require.True(t, platform.CommissionBalance.Equal(decimal.NewFromInt(25)))

	// Winner and seller each get an email, eventually
	require.Eventually(t, func() bool { return f.gateway.count() == 2 }, 2*time.Second, 10*time.Millisecond)
	sent := f.gateway.snapshot()
	emails := map[string]string{}
	for _, m := range sent {
		emails[m.email] = m.subject
	}
	require.Equal(t, "Congratulations! You won the auction!", emails["buyer2@example.com"])
	require.Equal(t, "Your product has been sold!", emails["seller1@example.com"])
}

// Selling twice succeeds exactly once; the repeat fails with AlreadySold and
// account balances change exactly once total.
func TestSettlementEngine_Sell_Twice(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.placeBid(t, "buyer1", 200)

	_, err := f.engine.Sell("p1", "seller1")
	require.NoError(t, err)

	_, err = f.engine.Sell("p1", "seller1")
	require.Error(t, err)
	require.True(t, errors.Is(err, auctionerrors.ErrAlreadySold))

	seller, err := f.repo.GetAccount("seller1")
	require.NoError(t, err)
	require.True(t, seller.Balance.Equal(decimal.NewFromInt(200)), "seller must be credited exactly once")

	platform, err := f.repo.GetPlatformAccount()
	require.NoError(t, err)
	require.True(t, platform.CommissionBalance.Equal(decimal.NewFromInt(20)), "commission must accrue exactly once")
}

func TestSettlementEngine_Sell_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		setup         func(t *testing.T, f *fixture)
		productID     string
		requesterID   string
		expectedError error
	}{
		{
			name:          "product_not_found",
			setup:         func(t *testing.T, f *fixture) {},
			productID:     "missing",
			requesterID:   "seller1",
			expectedError: auctionerrors.ErrProductNotFound,
		},
		{
			name:          "not_owner",
			setup:         func(t *testing.T, f *fixture) { f.placeBid(t, "buyer1", 100) },
			productID:     "p1",
			requesterID:   "buyer1",
			expectedError: auctionerrors.ErrNotOwner,
		},
		{
			name: "not_verified",
			setup: func(t *testing.T, f *fixture) {
				p, err := f.repo.GetProduct("p1")
				require.NoError(t, err)
				p.State = model.StateOpen
				require.NoError(t, f.repo.SaveProduct(p))
			},
			productID:     "p1",
			requesterID:   "seller1",
			expectedError: auctionerrors.ErrNotVerified,
		},
		{
			name:          "no_winning_bid",
			setup:         func(t *testing.T, f *fixture) {},
			productID:     "p1",
			requesterID:   "seller1",
			expectedError: auctionerrors.ErrNoWinningBid,
		},
		{
			name:          "empty_ids",
			setup:         func(t *testing.T, f *fixture) {},
			productID:     "",
			requesterID:   "",
			expectedError: auctionerrors.ErrInvalidProduct,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			tc.setup(t, f)

			_, err := f.engine.Sell(tc.productID, tc.requesterID)
			require.Error(t, err)
			require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)

			// No notification leaves a failed sale
			require.Never(t, func() bool { return f.gateway.count() > 0 }, 100*time.Millisecond, 20*time.Millisecond)
		})
	}
}

// A missing seller account aborts the sale before anything is written: the
// product stays verified and no balance moves.
func TestSettlementEngine_Sell_SellerNotFound(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.repo.SaveProduct(model.Product{
		ProductID:      "p2",
		SellerID:       "ghost-seller",
		Title:          "Orphaned Product",
		Slug:           "orphaned-product",
		Description:    "no seller account",
		Category:       "All",
		StartingPrice:  decimal.NewFromInt(10),
		CommissionRate: 10,
		State:          model.StateVerified,
		CreatedAt:      time.Now().UTC(),
	}))
	_, err := f.bidding.PlaceBid("p2", "buyer1", decimal.NewFromInt(75))
	require.NoError(t, err)

	_, err = f.engine.Sell("p2", "ghost-seller")
	require.Error(t, err)
	require.True(t, errors.Is(err, auctionerrors.ErrSellerNotFound))

	product, err := f.repo.GetProduct("p2")
	require.NoError(t, err)
	require.Equal(t, model.StateVerified, product.State, "failed sale must not leave the product sold")
	require.Empty(t, product.WinningBidderID)

	platform, err := f.repo.GetPlatformAccount()
	require.NoError(t, err)
	require.True(t, platform.CommissionBalance.IsZero())
}

// Without a platform account the sale still succeeds and the commission is
// simply not accrued anywhere.
func TestSettlementEngine_Sell_NoPlatformAccount(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	require.NoError(t, repo.SaveAccount(model.Account{UserID: "seller1", Email: "seller1@example.com", Role: model.RoleSeller}))
	require.NoError(t, repo.SaveAccount(model.Account{UserID: "buyer1", Email: "buyer1@example.com", Role: model.RoleBuyer}))
	require.NoError(t, repo.SaveProduct(model.Product{
		ProductID:      "p1",
		SellerID:       "seller1",
		Title:          "No Platform",
		Slug:           "no-platform",
		Description:    "d",
		Category:       "All",
		StartingPrice:  decimal.NewFromInt(10),
		CommissionRate: 10,
		State:          model.StateVerified,
		CreatedAt:      time.Now().UTC(),
	}))

	locks := locking.NewKeyedMutex()
	gateway := &recordingGateway{}
	engine := NewSettlementEngine(repo, locks, gateway)
	svc := bidding.NewBiddingService(repo, locks)

	_, err := svc.PlaceBid("p1", "buyer1", decimal.NewFromInt(100))
	require.NoError(t, err)

	result, err := engine.Sell("p1", "seller1")
	require.NoError(t, err)
	require.True(t, result.CommissionAmount.Equal(decimal.NewFromInt(10)))

	seller, err := repo.GetAccount("seller1")
	require.NoError(t, err)
	require.True(t, seller.Balance.Equal(decimal.NewFromInt(100)))
}

// Commission is computed in fixed-point arithmetic and rounded half up to two
// decimal places.
func TestSettlementEngine_Sell_CommissionRounding(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	p, err := f.repo.GetProduct("p1")
	require.NoError(t, err)
	p.CommissionRate = 5
	require.NoError(t, f.repo.SaveProduct(p))

	// 5% of 2.50 = 0.125, which rounds half up to 0.13
	_, err = f.bidding.PlaceBid("p1", "buyer1", decimal.RequireFromString("2.50"))
	require.NoError(t, err)

	result, err := f.engine.Sell("p1", "seller1")
	require.NoError(t, err)
	require.True(t, result.CommissionAmount.Equal(decimal.RequireFromString("0.13")),
		"expected commission 0.13, got %s", result.CommissionAmount)

	platform, err := f.repo.GetPlatformAccount()
	require.NoError(t, err)
	require.True(t, platform.CommissionBalance.Equal(decimal.RequireFromString("0.13")))
}

// A failing mail server must never fail or undo a settlement
func TestSettlementEngine_Sell_NotificationFailureIsNonFatal(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.placeBid(t, "buyer1", 100)

	engine := NewSettlementEngine(f.repo, f.locks, &failingGateway{})
	_, err := engine.Sell("p1", "seller1")
	require.NoError(t, err)

	product, err := f.repo.GetProduct("p1")
	require.NoError(t, err)
	require.Equal(t, model.StateSold, product.State)
}

// stalledReadsRepo holds the first n GetAccount calls at a barrier, so two
// concurrent sales both read their seller snapshot before either commits.
type stalledReadsRepo struct {
	repository.AuctionDB
	gated   int32
	n       int32
	barrier sync.WaitGroup
}

func newStalledReadsRepo(inner repository.AuctionDB, n int) *stalledReadsRepo {
	r := &stalledReadsRepo{AuctionDB: inner, n: int32(n)}
	r.barrier.Add(n)
	return r
}

func (r *stalledReadsRepo) GetAccount(userID string) (model.Account, error) {
	if atomic.AddInt32(&r.gated, 1) <= r.n {
		r.barrier.Done()
		r.barrier.Wait()
	}
	return r.AuctionDB.GetAccount(userID)
}

// Two products of one seller settled concurrently must credit the seller and
// the platform once per sale. The barrier forces both sales to read the same
// pre-sale account snapshot, so absolute-value writes would lose one credit.
func TestSettlementEngine_ConcurrentSalesSharedSeller(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.repo.SaveProduct(model.Product{
		ProductID:      "p2",
		SellerID:       "seller1",
		Title:          "Second Listing",
		Slug:           "second-listing",
		Description:    "d",
		Category:       "All",
		StartingPrice:  decimal.NewFromInt(50),
		CommissionRate: 10,
		State:          model.StateVerified,
		CreatedAt:      time.Now().UTC(),
	}))
	f.placeBid(t, "buyer1", 100)
	_, err := f.bidding.PlaceBid("p2", "buyer2", decimal.NewFromInt(100))
	require.NoError(t, err)

	gated := newStalledReadsRepo(f.repo, 2)
	engine := NewSettlementEngine(gated, f.locks, f.gateway)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for n, productID := range []string{"p1", "p2"} {
		wg.Add(1)
		go func(n int, productID string) {
			defer wg.Done()
			_, errs[n] = engine.Sell(productID, "seller1")
		}(n, productID)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	seller, err := f.repo.GetAccount("seller1")
	require.NoError(t, err)
	require.True(t, seller.Balance.Equal(decimal.NewFromInt(200)),
		"seller credited %s, want 200: one sale's credit was lost", seller.Balance)

	platform, err := f.repo.GetPlatformAccount()
	require.NoError(t, err)
	require.True(t, platform.CommissionBalance.Equal(decimal.NewFromInt(20)),
		"platform credited %s, want 20: one sale's commission was lost", platform.CommissionBalance)
}

// A bid racing a settlement is either accepted before the sale, and then wins
// it, or rejected once the product is sold. It can never slip in between.
func TestSettlementEngine_ConcurrentBidAndSell(t *testing.T) {
	t.Parallel()

	for i := 0; i < 50; i++ {
		f := newFixture(t)
		f.placeBid(t, "buyer1", 60)

		var wg sync.WaitGroup
		var bidErr, sellErr error
		var result model.SettlementResult

		wg.Add(2)
		go func() {
			defer wg.Done()
			_, bidErr = f.bidding.PlaceBid("p1", "buyer2", decimal.NewFromInt(70))
		}()
		go func() {
			defer wg.Done()
			result, sellErr = f.engine.Sell("p1", "seller1")
		}()
		wg.Wait()

		require.NoError(t, sellErr, "a sale with an existing bid must settle")

		if bidErr == nil {
			// The late bid got in before settlement: it must be the winner.
			require.Equal(t, "buyer2", result.WinningBidderID)
			require.True(t, result.FinalPrice.Equal(decimal.NewFromInt(70)))
		} else {
			// The bid lost the race: rejected because the auction closed.
			require.True(t, errors.Is(bidErr, auctionerrors.ErrAlreadySold), "got: %v", bidErr)
			require.Equal(t, "buyer1", result.WinningBidderID)
			require.True(t, result.FinalPrice.Equal(decimal.NewFromInt(60)))
		}
	}
}
