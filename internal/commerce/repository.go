package commerce

import (
	"context"

	"github.com/nmellal/gestock/internal/model"
)

type Repository interface {
	Create(ctx context.Context, c *model.Commerce) error
	FindByEmail(ctx context.Context, email string) (*model.Commerce, error)
}
