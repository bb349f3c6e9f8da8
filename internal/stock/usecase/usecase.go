package usecase

import (
	"context"
	"fmt"

	"github.com/nmellal/gestock/internal/domain"
	"github.com/nmellal/gestock/internal/model"
	"github.com/nmellal/gestock/internal/stock"
	"github.com/nmellal/gestock/internal/stock/dto"
	"github.com/nmellal/gestock/pkg/cache"
	"github.com/nmellal/gestock/pkg/logger"
	"go.uber.org/zap"
)

type stockUseCase struct {
	repo   stock.Repository
	cache  cache.Client
	logger logger.ZapLogger
}

// NewStockUseCase builds the stock usecase. The cache client may be nil.
func NewStockUseCase(repo stock.Repository, cache cache.Client, log logger.ZapLogger) stock.UseCase {
	return &stockUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

func (uc *stockUseCase) Replenish(ctx context.Context, input *dto.ReplenishInput) (*model.StockMovement, error) {
	if input.ProductID == "" {
		return nil, domain.Invalid("product id is required")
	}
	if input.Quantity <= 0 {
		return nil, domain.Invalid("replenishment quantity must be positive")
	}

	movement, err := uc.repo.Replenish(ctx, input.CommerceID, input.ProductID, input.Quantity)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		// Absent product or a product owned by another commerce: identical
		// outcome, the scoped update matched nothing.
		return nil, domain.ErrProductNotFound
	}

	uc.logger.Info("stock replenished",
		zap.String("commerce_id", input.CommerceID),
		zap.String("product_id", input.ProductID),
		zap.Int64("quantity_added", input.Quantity),
		zap.Int64("quantity_after", movement.QuantityAfter),
	)

	// The cached product list carries quantities, drop it before returning
	// so the next list read reflects the new count.
	uc.invalidateProductListCache(ctx, input.CommerceID)

	return movement, nil
}

func (uc *stockUseCase) ListMovements(ctx context.Context, commerceID, productID string) ([]model.StockMovement, error) {
	return uc.repo.FindMovements(ctx, commerceID, productID)
}

func (uc *stockUseCase) invalidateProductListCache(ctx context.Context, commerceID string) {
	if uc.cache == nil {
		return
	}
	key := fmt.Sprintf("products:list:%s", commerceID)
	if err := uc.cache.Delete(ctx, key); err != nil {
		uc.logger.Error("failed to invalidate product list cache",
			zap.String("commerce_id", commerceID), zap.Error(err))
	}
}
