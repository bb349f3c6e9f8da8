package commerce

import (
	"context"

	"github.com/nmellal/gestock/internal/commerce/dto"
	"github.com/nmellal/gestock/internal/model"
)

type UseCase interface {
	// Ensure lazily provisions a commerce for an authenticated user. It is
	// idempotent: the existing row is returned when one already matches the
	// email. A commerce is only created when the display name is non-empty.
	// An empty email is a silent no-op returning (nil, nil).
	Ensure(ctx context.Context, input *dto.EnsureCommerceInput) (*model.Commerce, error)

	// FindByEmail resolves a commerce without ever creating one. Returns
	// (nil, nil) when absent.
	FindByEmail(ctx context.Context, email string) (*model.Commerce, error)
}
