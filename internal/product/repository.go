package product

import (
	"context"

	"github.com/nmellal/gestock/internal/model"
)

// Repository is the tenant-scoped product store. Reads join the category
// display name; writes filter jointly by (id, commerce_id).
type Repository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id, commerceID string) (*model.Product, error)
	FindAll(ctx context.Context, commerceID string) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) (int64, error)
	Delete(ctx context.Context, id, commerceID string) (int64, error)
}
