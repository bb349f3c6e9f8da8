package stock

import (
	"context"

	"github.com/nmellal/gestock/internal/model"
)

// Repository owns the quantity column of products. The increment must happen
// in a single atomic statement inside the store; callers never read, compute
// and write back.
type Repository interface {
	// Replenish adds delta to the product quantity scoped to
	// (productID, commerceID) and records the movement in the same
	// transaction. Returns (nil, nil) when the scoped product is absent.
	Replenish(ctx context.Context, commerceID, productID string, delta int64) (*model.StockMovement, error)

	// FindMovements returns the tenant's movement log, newest first, or only
	// one product's log when productID is non-empty.
	FindMovements(ctx context.Context, commerceID, productID string) ([]model.StockMovement, error)
}
