package category

import (
	"context"

	"github.com/nmellal/gestock/internal/category/dto"
	"github.com/nmellal/gestock/internal/model"
)

type UseCase interface {
	CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error)
	GetCategory(ctx context.Context, id, commerceID string) (*model.Category, error)
	ListCategories(ctx context.Context, commerceID string) ([]model.Category, error)
	UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error)
	DeleteCategory(ctx context.Context, id, commerceID string) error
}
