package dto

type EnsureCommerceInput struct {
	Email string
	Name  string
}
