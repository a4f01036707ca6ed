package db_models

type Reviewer struct {
	BaseModel
	FirstName string
	LastName  string

	Reviews []Review `gorm:"foreignKey:ReviewerID"`
}
