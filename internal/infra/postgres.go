package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pokereview/internal/config"
	"pokereview/internal/models/db_models"
)

func InitPostgresql(cfg *config.Config) *gorm.DB {
	connectionPool, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if cfg.AutoMigrate {
		if err := AutoMigrate(connectionPool); err != nil {
			log.Fatalf("Error migrating database schema: %v", err)
		}
	}

	return connectionPool
}

// AutoMigrate creates the six entity tables and the two join tables
// (pokemon_owners, pokemon_categories) derived from the model tags.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Country{},
		&db_models.Category{},
		&db_models.Owner{},
		&db_models.Reviewer{},
		&db_models.Pokemon{},
		&db_models.Review{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}

func StartTransaction(db *gorm.DB) *gorm.DB {
	tx := db.Begin()
	if tx.Error != nil {
		log.Printf("Error starting transaction: %v", tx.Error)
	}
	return tx
}

func ReleaseTransaction(tx *gorm.DB, err error) {
	if err != nil {
		if rollbackErr := tx.Rollback().Error; rollbackErr != nil {
			log.Printf("Error rollback transaction: %v", rollbackErr)
		}
		return
	}
	if commitErr := tx.Commit().Error; commitErr != nil {
		log.Printf("Error committing transaction: %v", commitErr)
	}
}
