package dto

type CreateCategoryInput struct {
	CommerceID  string
	Name        string
	Description string
}

type UpdateCategoryInput struct {
	ID          string
	CommerceID  string
	Name        string
	Description string
}
