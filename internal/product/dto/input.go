package dto

type CreateProductInput struct {
	CommerceID string
	CategoryID string
	Name       string
	Price      int64
	ImageURL   string
	Quantity   int64
	Unit       string
}

// UpdateProductInput only touches name, price and image. Category is fixed at
// creation and quantity only moves through replenishment.
type UpdateProductInput struct {
	ID         string
	CommerceID string
	Name       string
	Price      int64
	ImageURL   string
}
