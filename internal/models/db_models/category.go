package db_models

type Category struct {
	BaseModel
	Name     string    `gorm:"unique;not null"`
	Pokemons []Pokemon `gorm:"many2many:pokemon_categories"`
}
