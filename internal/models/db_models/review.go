package db_models

type Review struct {
	BaseModel
	Title  string `gorm:"unique;not null"`
	Text   string
	Rating int

	PokemonID  int
	ReviewerID int
}
