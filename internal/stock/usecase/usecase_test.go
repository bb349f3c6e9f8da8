package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/nmellal/gestock/internal/domain"
	"github.com/nmellal/gestock/internal/model"
	"github.com/nmellal/gestock/internal/stock/dto"
	"github.com/nmellal/gestock/pkg/cache"
	"github.com/nmellal/gestock/pkg/logger"
)

type fakeCache struct {
	store map[string]string
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	val, ok := c.store[key]
	if !ok {
		return "", cache.ErrNotFound
	}
	return val, nil
}

func (c *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.store[key] = value
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	delete(c.store, key)
	return nil
}

// fakeStockRepo serializes increments under a mutex, mirroring the atomicity
// the real repository gets from the database.
type fakeStockRepo struct {
	mu         sync.Mutex
	quantities map[string]int64 // key: commerceID/productID
	movements  []model.StockMovement
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{quantities: map[string]int64{}}
}

func stockKey(commerceID, productID string) string {
	return commerceID + "/" + productID
}

func (r *fakeStockRepo) seed(commerceID, productID string, quantity int64) {
	r.quantities[stockKey(commerceID, productID)] = quantity
}

func (r *fakeStockRepo) Replenish(_ context.Context, commerceID, productID string, delta int64) (*model.StockMovement, error) {
	if delta <= 0 {
		return nil, fmt.Errorf("replenish delta must be positive, got %d", delta)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := stockKey(commerceID, productID)
	before, ok := r.quantities[key]
	if !ok {
		return nil, nil
	}
	r.quantities[key] = before + delta

	m := model.StockMovement{
		ID:             uuid.New().String(),
		CommerceID:     commerceID,
		ProductID:      productID,
		QuantityChange: delta,
		QuantityBefore: before,
		QuantityAfter:  before + delta,
	}
	r.movements = append(r.movements, m)
	return &m, nil
}

func (r *fakeStockRepo) FindMovements(_ context.Context, commerceID, productID string) ([]model.StockMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []model.StockMovement{}
	for _, m := range r.movements {
		if m.CommerceID != commerceID {
			continue
		}
		if productID != "" && m.ProductID != productID {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func TestReplenish_AddsQuantity(t *testing.T) {
	repo := newFakeStockRepo()
	repo.seed("t1", "p1", 10)
	uc := NewStockUseCase(repo, nil, logger.NewNop())

	m, err := uc.Replenish(context.Background(), &dto.ReplenishInput{
		CommerceID: "t1", ProductID: "p1", Quantity: 5,
	})
	require.NoError(t, err)
	require.Equal(t, int64(10), m.QuantityBefore)
	require.Equal(t, int64(15), m.QuantityAfter)
	require.Equal(t, int64(15), repo.quantities[stockKey("t1", "p1")])
}

func TestReplenish_RejectsNonPositiveDeltas(t *testing.T) {
	repo := newFakeStockRepo()
	repo.seed("t1", "p1", 10)
	uc := NewStockUseCase(repo, nil, logger.NewNop())

	for _, qty := range []int64{0, -5} {
		_, err := uc.Replenish(context.Background(), &dto.ReplenishInput{
			CommerceID: "t1", ProductID: "p1", Quantity: qty,
		})
		require.True(t, domain.IsValidation(err), "quantity %d must be rejected", qty)
	}
	require.Equal(t, int64(10), repo.quantities[stockKey("t1", "p1")])
}

func TestReplenish_WrongTenantFailsClosed(t *testing.T) {
	repo := newFakeStockRepo()
	repo.seed("t1", "p1", 15)
	uc := NewStockUseCase(repo, nil, logger.NewNop())

	_, err := uc.Replenish(context.Background(), &dto.ReplenishInput{
		CommerceID: "t2", ProductID: "p1", Quantity: 5,
	})
	require.True(t, domain.IsNotFound(err))
	require.Equal(t, int64(15), repo.quantities[stockKey("t1", "p1")])
}

func TestReplenish_RequiresProductID(t *testing.T) {
	uc := NewStockUseCase(newFakeStockRepo(), nil, logger.NewNop())

	_, err := uc.Replenish(context.Background(), &dto.ReplenishInput{
		CommerceID: "t1", ProductID: "", Quantity: 5,
	})
	require.True(t, domain.IsValidation(err))
}

func TestReplenish_ConcurrentIncrementsAllLand(t *testing.T) {
	repo := newFakeStockRepo()
	repo.seed("t1", "p1", 100)
	uc := NewStockUseCase(repo, nil, logger.NewNop())

	const n = 50
	var expected int64 = 100

	deltas := make([]int64, n)
	for i := range deltas {
		deltas[i] = int64(i%7 + 1)
		expected += deltas[i]
	}

	errs := make([]error, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int, delta int64) {
			defer wg.Done()
			_, errs[i] = uc.Replenish(context.Background(), &dto.ReplenishInput{
				CommerceID: "t1", ProductID: "p1", Quantity: delta,
			})
		}(i, deltas[i])
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	require.Equal(t, expected, repo.quantities[stockKey("t1", "p1")])

	movements, err := uc.ListMovements(context.Background(), "t1", "p1")
	require.NoError(t, err)
	require.Len(t, movements, n)
}

func TestReplenish_DropsProductListCacheBeforeReturning(t *testing.T) {
	repo := newFakeStockRepo()
	repo.seed("t1", "p1", 10)
	repo.seed("t2", "p2", 10)
	fc := &fakeCache{store: map[string]string{
		"products:list:t1": "[]",
		"products:list:t2": "[]",
	}}
	uc := NewStockUseCase(repo, fc, logger.NewNop())

	_, err := uc.Replenish(context.Background(), &dto.ReplenishInput{
		CommerceID: "t1", ProductID: "p1", Quantity: 5,
	})
	require.NoError(t, err)

	// By the time Replenish returns, the caller's next product list cannot be
	// served the stale quantities. Other tenants keep their entries.
	require.NotContains(t, fc.store, "products:list:t1")
	require.Contains(t, fc.store, "products:list:t2")
}

func TestListMovements_ScopedToTenant(t *testing.T) {
	repo := newFakeStockRepo()
	repo.seed("t1", "p1", 0)
	repo.seed("t2", "p2", 0)
	uc := NewStockUseCase(repo, nil, logger.NewNop())

	_, err := uc.Replenish(context.Background(), &dto.ReplenishInput{CommerceID: "t1", ProductID: "p1", Quantity: 3})
	require.NoError(t, err)
	_, err = uc.Replenish(context.Background(), &dto.ReplenishInput{CommerceID: "t2", ProductID: "p2", Quantity: 4})
	require.NoError(t, err)

	movements, err := uc.ListMovements(context.Background(), "t1", "")
	require.NoError(t, err)
	require.Len(t, movements, 1)
	require.Equal(t, "p1", movements[0].ProductID)
}
