package db_models

type Owner struct {
	BaseModel
	FirstName string
	LastName  string
	Gym       string
	CountryID int

	Country  Country
	Pokemons []Pokemon `gorm:"many2many:pokemon_owners"`
}
