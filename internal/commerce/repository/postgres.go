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

func (r *PGRepository) Create(ctx context.Context, c *model.Commerce) error {
	query := `
        INSERT INTO commerces (id, email, name, created_at, updated_at)
        VALUES (:id, :email, :name, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *PGRepository) FindByEmail(ctx context.Context, email string) (*model.Commerce, error) {
	var commerce model.Commerce
	query := `SELECT * FROM commerces WHERE email = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &commerce, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &commerce, nil
}
