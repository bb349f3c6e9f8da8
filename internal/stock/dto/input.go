package dto

type ReplenishInput struct {
	CommerceID string
	ProductID  string
	Quantity   int64
}
