package model

// Commerce is a merchant account. Its email is the unique identity handed to
// us by the external auth provider, and its ID is the isolation boundary every
// category and product row is scoped to.
type Commerce struct {
	BaseModel
	Email string `db:"email" json:"email"`
	Name  string `db:"name" json:"name"`
}
