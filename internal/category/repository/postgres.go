package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/nmellal/gestock/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, c *model.Category) error {
	query := `
        INSERT INTO categories (id, commerce_id, name, description, created_at, updated_at)
        VALUES (:id, :commerce_id, :name, :description, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id, commerceID string) (*model.Category, error) {
	var category model.Category
	query := `SELECT * FROM categories WHERE id = $1 AND commerce_id = $2 LIMIT 1`
	err := r.DB.GetContext(ctx, &category, query, id, commerceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *PGRepository) FindAll(ctx context.Context, commerceID string) ([]model.Category, error) {
	categories := []model.Category{}
	query := `SELECT * FROM categories WHERE commerce_id = $1 ORDER BY created_at ASC`
	err := r.DB.SelectContext(ctx, &categories, query, commerceID)
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *PGRepository) Update(ctx context.Context, c *model.Category) (int64, error) {
	query := `
        UPDATE categories
        SET name = :name,
            description = :description,
            updated_at = :updated_at
        WHERE id = :id AND commerce_id = :commerce_id
    `
	res, err := r.DB.NamedExecContext(ctx, query, c)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *PGRepository) Delete(ctx context.Context, id, commerceID string) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM categories WHERE id = $1 AND commerce_id = $2`, id, commerceID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
