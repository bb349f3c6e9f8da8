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

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (
            id, commerce_id, category_id, name, price, image_url,
            quantity, unit, created_at, updated_at
        )
        VALUES (
            :id, :commerce_id, :category_id, :name, :price, :image_url,
            :quantity, :unit, :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

// selectWithCategory joins the category display name for read paths. The name
// is denormalized into the result only, never stored.
const selectWithCategory = `
    SELECT p.*, c.name AS category_name
    FROM products p
    JOIN categories c ON c.id = p.category_id
`

func (r *PGRepository) FindByID(ctx context.Context, id, commerceID string) (*model.Product, error) {
	var product model.Product
	query := selectWithCategory + ` WHERE p.id = $1 AND p.commerce_id = $2 LIMIT 1`
	err := r.DB.GetContext(ctx, &product, query, id, commerceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *PGRepository) FindAll(ctx context.Context, commerceID string) ([]model.Product, error) {
	products := []model.Product{}
	query := selectWithCategory + ` WHERE p.commerce_id = $1 ORDER BY p.created_at ASC`
	err := r.DB.SelectContext(ctx, &products, query, commerceID)
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *PGRepository) Update(ctx context.Context, p *model.Product) (int64, error) {
	query := `
        UPDATE products
        SET name = :name,
            price = :price,
            image_url = :image_url,
            updated_at = :updated_at
        WHERE id = :id AND commerce_id = :commerce_id
    `
	res, err := r.DB.NamedExecContext(ctx, query, p)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *PGRepository) Delete(ctx context.Context, id, commerceID string) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM products WHERE id = $1 AND commerce_id = $2`, id, commerceID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
