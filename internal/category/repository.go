package category

import (
	"context"

	"github.com/nmellal/gestock/internal/model"
)

// Repository is the tenant-scoped category store. Every read and write
// filters jointly by (id, commerce_id) so cross-tenant access fails closed.
type Repository interface {
	Create(ctx context.Context, c *model.Category) error
	FindByID(ctx context.Context, id, commerceID string) (*model.Category, error)
	FindAll(ctx context.Context, commerceID string) ([]model.Category, error)
	Update(ctx context.Context, c *model.Category) (int64, error)
	Delete(ctx context.Context, id, commerceID string) (int64, error)
}
