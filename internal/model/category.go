package model

type Category struct {
	BaseModel
	CommerceID  string `db:"commerce_id" json:"commerce_id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
}
