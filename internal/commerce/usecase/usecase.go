package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nmellal/gestock/internal/commerce"
	"github.com/nmellal/gestock/internal/commerce/dto"
	"github.com/nmellal/gestock/internal/model"
	"github.com/nmellal/gestock/pkg/logger"
	"go.uber.org/zap"
)

type commerceUseCase struct {
	repo   commerce.Repository
	logger logger.ZapLogger
}

func NewCommerceUseCase(repo commerce.Repository, log logger.ZapLogger) commerce.UseCase {
	return &commerceUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *commerceUseCase) Ensure(ctx context.Context, input *dto.EnsureCommerceInput) (*model.Commerce, error) {
	if input.Email == "" {
		return nil, nil
	}

	existing, err := uc.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	if input.Name == "" {
		// Nothing to provision with; first login without a display name.
		return nil, nil
	}

	now := time.Now()
	c := &model.Commerce{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email: input.Email,
		Name:  input.Name,
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	uc.logger.Info("provisioned commerce", zap.String("commerce_id", c.ID), zap.String("email", c.Email))
	return c, nil
}

func (uc *commerceUseCase) FindByEmail(ctx context.Context, email string) (*model.Commerce, error) {
	if email == "" {
		return nil, nil
	}
	return uc.repo.FindByEmail(ctx, email)
}
