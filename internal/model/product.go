package model

// Product belongs to exactly one commerce and one category. Price is an
// integer amount in the smallest currency unit. ImageURL is the opaque path
// returned by the upload endpoint; this service never interprets it.
type Product struct {
	BaseModel
	CommerceID string `db:"commerce_id" json:"commerce_id"`
	CategoryID string `db:"category_id" json:"category_id"`
	Name       string `db:"name" json:"name"`
	Price      int64  `db:"price" json:"price"`
	ImageURL   string `db:"image_url" json:"image_url"`
	Quantity   int64  `db:"quantity" json:"quantity"`
	Unit       string `db:"unit" json:"unit"`

	// CategoryName is joined from categories on reads, never stored.
	CategoryName string `db:"category_name" json:"category_name"`
}
