package model

import "time"

// StockMovement is an audit row written in the same transaction as the
// quantity update it records.
type StockMovement struct {
	ID             string    `db:"id" json:"id"`
	CommerceID     string    `db:"commerce_id" json:"commerce_id"`
	ProductID      string    `db:"product_id" json:"product_id"`
	QuantityChange int64     `db:"quantity_change" json:"quantity_change"`
	QuantityBefore int64     `db:"quantity_before" json:"quantity_before"`
	QuantityAfter  int64     `db:"quantity_after" json:"quantity_after"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
