package seed

import (
	"log"
	"time"

	"gorm.io/gorm"

	"pokereview/internal/infra"
	"pokereview/internal/models/db_models"
)

// Run populates an empty store with sample data inside a single
// transaction. A store that already holds pokemon rows is left untouched.
func Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&db_models.Pokemon{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Store already contains pokemon, skipping seed")
		return nil
	}

	tx := infra.StartTransaction(db)
	if tx.Error != nil {
		return tx.Error
	}

	var err error
	defer func() { infra.ReleaseTransaction(tx, err) }()

	england := db_models.Country{Name: "England"}
	poland := db_models.Country{Name: "Poland"}
	brazil := db_models.Country{Name: "Brazil"}
	for _, country := range []*db_models.Country{&england, &poland, &brazil} {
		if err = tx.Create(country).Error; err != nil {
			return err
		}
	}

	electric := db_models.Category{Name: "Electric"}
	water := db_models.Category{Name: "Water"}
	leaf := db_models.Category{Name: "Leaf"}
	for _, category := range []*db_models.Category{&electric, &water, &leaf} {
		if err = tx.Create(category).Error; err != nil {
			return err
		}
	}

	jack := db_models.Owner{FirstName: "Jack", LastName: "London", Gym: "Brocks Gym", CountryID: england.ID}
	harry := db_models.Owner{FirstName: "Harry", LastName: "Potter", Gym: "Mistys Gym", CountryID: poland.ID}
	ash := db_models.Owner{FirstName: "Ash", LastName: "Ketchum", Gym: "Ashs Gym", CountryID: brazil.ID}
	for _, owner := range []*db_models.Owner{&jack, &harry, &ash} {
		if err = tx.Create(owner).Error; err != nil {
			return err
		}
	}

	john := db_models.Reviewer{FirstName: "John", LastName: "Smith"}
	panda := db_models.Reviewer{FirstName: "Panda", LastName: "Smith"}
	anne := db_models.Reviewer{FirstName: "Anne", LastName: "Skywalker"}
	for _, reviewer := range []*db_models.Reviewer{&john, &panda, &anne} {
		if err = tx.Create(reviewer).Error; err != nil {
			return err
		}
	}

	birthDate := time.Date(1903, time.January, 1, 0, 0, 0, 0, time.UTC)
	pokemons := []struct {
		pokemon  db_models.Pokemon
		owner    *db_models.Owner
		category *db_models.Category
		reviews  []db_models.Review
	}{
		{
			pokemon:  db_models.Pokemon{Name: "Pikachu", BirthDate: birthDate},
			owner:    &jack,
			category: &electric,
			reviews: []db_models.Review{
				{Title: "Pikachu", Text: "Pikachu is the best pokemon, because it is electric", Rating: 5, ReviewerID: john.ID},
				{Title: "Pikachu rocks", Text: "Pikachu is the best a killing rocks", Rating: 5, ReviewerID: panda.ID},
				{Title: "Pikachu, pikachu, pikachu", Text: "Pikachu, pikachu, pikachu", Rating: 1, ReviewerID: anne.ID},
			},
		},
		{
			pokemon:  db_models.Pokemon{Name: "Squirtle", BirthDate: birthDate},
			owner:    &harry,
			category: &water,
			reviews: []db_models.Review{
				{Title: "Squirtle", Text: "Squirtle is the best pokemon, because it is electric", Rating: 5, ReviewerID: john.ID},
				{Title: "Squirtle rocks", Text: "Squirtle is the best a killing rocks", Rating: 5, ReviewerID: panda.ID},
				{Title: "Squirtle, squirtle, squirtle", Text: "Squirtle, squirtle, squirtle", Rating: 1, ReviewerID: anne.ID},
			},
		},
		{
			pokemon:  db_models.Pokemon{Name: "Venusaur", BirthDate: birthDate},
			owner:    &ash,
			category: &leaf,
			reviews: []db_models.Review{
				{Title: "Venusaur", Text: "Venusaur is the best pokemon, because it is electric", Rating: 5, ReviewerID: john.ID},
				{Title: "Venusaur rocks", Text: "Venusaur is the best a killing rocks", Rating: 5, ReviewerID: panda.ID},
				{Title: "Venusaur, venusaur, venusaur", Text: "Venusaur, venusaur, venusaur", Rating: 1, ReviewerID: anne.ID},
			},
		},
	}

	for i := range pokemons {
		entry := &pokemons[i]
		if err = tx.Create(&entry.pokemon).Error; err != nil {
			return err
		}
		if err = tx.Model(&entry.pokemon).Association("Owners").Append(entry.owner); err != nil {
			return err
		}
		if err = tx.Model(&entry.pokemon).Association("Categories").Append(entry.category); err != nil {
			return err
		}
		for j := range entry.reviews {
			entry.reviews[j].PokemonID = entry.pokemon.ID
			if err = tx.Create(&entry.reviews[j]).Error; err != nil {
				return err
			}
		}
	}

	log.Println("Seeded sample data")
	return nil
}
