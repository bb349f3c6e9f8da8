package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nmellal/gestock/internal/category"
	"github.com/nmellal/gestock/internal/category/dto"
	"github.com/nmellal/gestock/internal/domain"
	"github.com/nmellal/gestock/internal/model"
	"github.com/nmellal/gestock/pkg/logger"
)

type categoryUseCase struct {
	repo   category.Repository
	logger logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	if input.Name == "" {
		return nil, domain.Invalid("category name is required")
	}

	now := time.Now()
	cat := &model.Category{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CommerceID:  input.CommerceID,
		Name:        input.Name,
		Description: input.Description,
	}

	if err := uc.repo.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id, commerceID string) (*model.Category, error) {
	return uc.repo.FindByID(ctx, id, commerceID)
}

func (uc *categoryUseCase) ListCategories(ctx context.Context, commerceID string) ([]model.Category, error) {
	return uc.repo.FindAll(ctx, commerceID)
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error) {
	if input.ID == "" {
		return nil, domain.Invalid("category id is required")
	}
	if input.Name == "" {
		return nil, domain.Invalid("category name is required")
	}

	cat, err := uc.repo.FindByID(ctx, input.ID, input.CommerceID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrCategoryNotFound
	}

	cat.Name = input.Name
	cat.Description = input.Description
	cat.UpdatedAt = time.Now()

	rows, err := uc.repo.Update(ctx, cat)
	if err != nil {
		return nil, err
	}
	// A zero-row update means the row vanished between read and write; surface
	// it instead of treating it as success.
	if rows == 0 {
		return nil, domain.ErrCategoryNotFound
	}
	return cat, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id, commerceID string) error {
	if id == "" {
		return domain.Invalid("category id is required")
	}

	rows, err := uc.repo.Delete(ctx, id, commerceID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}
