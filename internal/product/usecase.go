package product

import (
	"context"

	"github.com/nmellal/gestock/internal/model"
	"github.com/nmellal/gestock/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id, commerceID string) (*model.Product, error)
	ListProducts(ctx context.Context, commerceID string) ([]model.Product, error)
	UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id, commerceID string) error
}
