package stock

import (
	"context"

	"github.com/nmellal/gestock/internal/model"
	"github.com/nmellal/gestock/internal/stock/dto"
)

type UseCase interface {
	Replenish(ctx context.Context, input *dto.ReplenishInput) (*model.StockMovement, error)
	ListMovements(ctx context.Context, commerceID, productID string) ([]model.StockMovement, error)
}
