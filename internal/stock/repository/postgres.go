package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/nmellal/gestock/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// Replenish runs the increment as one atomic UPDATE so concurrent
// replenishments of the same product serialize inside the database and no
// update is lost. The movement row commits with it or not at all.
func (r *PGRepository) Replenish(ctx context.Context, commerceID, productID string, delta int64) (*model.StockMovement, error) {
	// Re-validated here: this layer is the trust boundary for the invariant
	// that quantities only ever grow through replenishment.
	if delta <= 0 {
		return nil, fmt.Errorf("replenish delta must be positive, got %d", delta)
	}

	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var quantityAfter int64
	query := `
        UPDATE products
        SET quantity = quantity + $1, updated_at = $2
        WHERE id = $3 AND commerce_id = $4
        RETURNING quantity
    `
	now := time.Now()
	err = tx.GetContext(ctx, &quantityAfter, query, delta, now, productID, commerceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	movement := &model.StockMovement{
		ID:             uuid.New().String(),
		CommerceID:     commerceID,
		ProductID:      productID,
		QuantityChange: delta,
		QuantityBefore: quantityAfter - delta,
		QuantityAfter:  quantityAfter,
		CreatedAt:      now,
	}

	insertQuery := `
        INSERT INTO stock_movements (
            id, commerce_id, product_id, quantity_change,
            quantity_before, quantity_after, created_at
        )
        VALUES (
            :id, :commerce_id, :product_id, :quantity_change,
            :quantity_before, :quantity_after, :created_at
        )
    `
	if _, err := tx.NamedExecContext(ctx, insertQuery, movement); err != nil {
		return nil, fmt.Errorf("failed to log stock movement: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return movement, nil
}

func (r *PGRepository) FindMovements(ctx context.Context, commerceID, productID string) ([]model.StockMovement, error) {
	movements := []model.StockMovement{}

	query := `SELECT * FROM stock_movements WHERE commerce_id = $1`
	args := []interface{}{commerceID}
	if productID != "" {
		query += ` AND product_id = $2`
		args = append(args, productID)
	}
	query += ` ORDER BY created_at DESC`

	err := r.DB.SelectContext(ctx, &movements, query, args...)
	if err != nil {
		return nil, err
	}
	return movements, nil
}
