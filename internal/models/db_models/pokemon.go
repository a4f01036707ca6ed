package db_models

import "time"

type Pokemon struct {
	BaseModel
	Name      string `gorm:"unique;not null"`
	BirthDate time.Time

	Reviews    []Review   `gorm:"foreignKey:PokemonID"`
	Owners     []Owner    `gorm:"many2many:pokemon_owners"`
	Categories []Category `gorm:"many2many:pokemon_categories"`
}
