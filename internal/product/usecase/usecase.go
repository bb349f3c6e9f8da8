package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nmellal/gestock/internal/domain"
	"github.com/nmellal/gestock/internal/model"
	"github.com/nmellal/gestock/internal/product"
	"github.com/nmellal/gestock/internal/product/dto"
	"github.com/nmellal/gestock/pkg/cache"
	"github.com/nmellal/gestock/pkg/logger"
	"go.uber.org/zap"
)

const listCacheTTL = 5 * time.Minute

type productUseCase struct {
	repo   product.Repository
	cache  cache.Client
	logger logger.ZapLogger
}

// NewProductUseCase builds the product usecase. The cache client may be nil,
// in which case list caching is skipped.
func NewProductUseCase(repo product.Repository, cache cache.Client, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if input.Price <= 0 {
		return nil, domain.Invalid("product price is required")
	}
	if input.CategoryID == "" {
		return nil, domain.Invalid("product category is required")
	}
	if input.Quantity < 0 {
		return nil, domain.Invalid("product quantity cannot be negative")
	}

	now := time.Now()
	unit := input.Unit
	if unit == "" {
		unit = "piece"
	}

	p := &model.Product{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CommerceID: input.CommerceID,
		CategoryID: input.CategoryID,
		Name:       input.Name,
		Price:      input.Price,
		ImageURL:   input.ImageURL,
		Quantity:   input.Quantity,
		Unit:       unit,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.invalidateListCache(ctx, input.CommerceID)

	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id, commerceID string) (*model.Product, error) {
	return uc.repo.FindByID(ctx, id, commerceID)
}

func (uc *productUseCase) ListProducts(ctx context.Context, commerceID string) ([]model.Product, error) {
	cacheKey := listCacheKey(commerceID)

	if uc.cache != nil {
		if val, err := uc.cache.Get(ctx, cacheKey); err == nil {
			var products []model.Product
			if err := json.Unmarshal([]byte(val), &products); err == nil {
				return products, nil
			}
		}
	}

	products, err := uc.repo.FindAll(ctx, commerceID)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if data, err := json.Marshal(products); err == nil {
			if err := uc.cache.Set(ctx, cacheKey, string(data), listCacheTTL); err != nil {
				uc.logger.Error("failed to cache product list",
					zap.String("commerce_id", commerceID), zap.Error(err))
			}
		}
	}

	return products, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	if input.ID == "" {
		return nil, domain.Invalid("product id is required")
	}
	if input.Price <= 0 {
		return nil, domain.Invalid("product price is required")
	}

	p, err := uc.repo.FindByID(ctx, input.ID, input.CommerceID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProductNotFound
	}

	p.Name = input.Name
	p.Price = input.Price
	p.ImageURL = input.ImageURL
	p.UpdatedAt = time.Now()

	rows, err := uc.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, domain.ErrProductNotFound
	}

	uc.invalidateListCache(ctx, input.CommerceID)

	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id, commerceID string) error {
	if id == "" {
		return domain.Invalid("product id is required")
	}

	rows, err := uc.repo.Delete(ctx, id, commerceID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProductNotFound
	}

	uc.invalidateListCache(ctx, commerceID)

	return nil
}

func listCacheKey(commerceID string) string {
	return fmt.Sprintf("products:list:%s", commerceID)
}

// invalidateListCache drops the tenant's list key before the mutating call
// returns, so a subsequent read cannot be served rows from before the write.
func (uc *productUseCase) invalidateListCache(ctx context.Context, commerceID string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Delete(ctx, listCacheKey(commerceID)); err != nil {
		uc.logger.Error("failed to invalidate product list cache",
			zap.String("commerce_id", commerceID), zap.Error(err))
	}
}
