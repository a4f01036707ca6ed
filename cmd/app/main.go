package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pokereview/cmd/fx/categoryfx"
	"pokereview/cmd/fx/controllersfx"
	"pokereview/cmd/fx/countryfx"
	"pokereview/cmd/fx/dbfx"
	"pokereview/cmd/fx/ownerfx"
	"pokereview/cmd/fx/pokemonfx"
	"pokereview/cmd/fx/reviewerfx"
	"pokereview/cmd/fx/reviewfx"
	"pokereview/internal/api/controllers"
	"pokereview/internal/config"
	"pokereview/internal/infra"
	"pokereview/internal/seed"
	"pokereview/pkg/middleware"
)

func main() {
	app := fx.New(
		dbfx.Module,
		pokemonfx.Module,
		categoryfx.Module,
		countryfx.Module,
		ownerfx.Module,
		reviewfx.Module,
		reviewerfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(SeedStore),
		fx.Invoke(StartServer),
	)

	app.Run()
}

// SeedStore runs the sample-data bootstrap when the startup flag asks for
// it; it is not reachable through the API.
func SeedStore(cfg *config.Config, db *gorm.DB) error {
	if !cfg.SeedDB {
		return nil
	}
	return seed.Run(db)
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, db *gorm.DB, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	pokemonController *controllers.PokemonController,
	categoryController *controllers.CategoryController,
	countryController *controllers.CountryController,
	ownerController *controllers.OwnerController,
	reviewController *controllers.ReviewController,
	reviewerController *controllers.ReviewerController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		pokemonController, categoryController, countryController,
		ownerController, reviewController, reviewerController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	pokemonController *controllers.PokemonController,
	categoryController *controllers.CategoryController,
	countryController *controllers.CountryController,
	ownerController *controllers.OwnerController,
	reviewController *controllers.ReviewController,
	reviewerController *controllers.ReviewerController) {

	api := r.Group("/api")

	pokemonGroup := api.Group("/pokemon")
	pokemonGroup.GET("", pokemonController.ListPokemon)
	pokemonGroup.GET("/:id", pokemonController.GetPokemonByID)
	pokemonGroup.GET("/:id/rating", pokemonController.GetPokemonRating)
	pokemonGroup.POST("", pokemonController.CreatePokemon)
	pokemonGroup.PUT("/:id", pokemonController.UpdatePokemon)
	pokemonGroup.DELETE("/:id", pokemonController.DeletePokemon)

	categoryGroup := api.Group("/category")
	categoryGroup.GET("", categoryController.ListCategories)
	categoryGroup.GET("/:id", categoryController.GetCategoryByID)
	categoryGroup.GET("/:id/pokemon", categoryController.ListPokemonByCategory)
	categoryGroup.POST("", categoryController.CreateCategory)
	categoryGroup.PUT("/:id", categoryController.UpdateCategory)
	categoryGroup.DELETE("/:id", categoryController.DeleteCategory)

	countryGroup := api.Group("/country")
	countryGroup.GET("", countryController.ListCountries)
	countryGroup.GET("/:id", countryController.GetCountryByID)
	countryGroup.GET("/owners/:ownerId", countryController.GetCountryByOwner)
	countryGroup.POST("", countryController.CreateCountry)
	countryGroup.PUT("/:id", countryController.UpdateCountry)
	countryGroup.DELETE("/:id", countryController.DeleteCountry)

	ownerGroup := api.Group("/owner")
	ownerGroup.GET("", ownerController.ListOwners)
	ownerGroup.GET("/:id", ownerController.GetOwnerByID)
	ownerGroup.GET("/:id/pokemon", ownerController.ListPokemonByOwner)
	ownerGroup.POST("", ownerController.CreateOwner)
	ownerGroup.PUT("/:id", ownerController.UpdateOwner)
	ownerGroup.DELETE("/:id", ownerController.DeleteOwner)

	reviewGroup := api.Group("/review")
	reviewGroup.GET("", reviewController.ListReviews)
	reviewGroup.GET("/:id", reviewController.GetReviewByID)
	reviewGroup.GET("/pokemon/:pokeId", reviewController.ListReviewsByPokemon)
	reviewGroup.POST("", reviewController.CreateReview)
	reviewGroup.PUT("/:id", reviewController.UpdateReview)
	reviewGroup.DELETE("/:id", reviewController.DeleteReview)

	reviewerGroup := api.Group("/reviewer")
	reviewerGroup.GET("", reviewerController.ListReviewers)
	reviewerGroup.GET("/:id", reviewerController.GetReviewerByID)
	reviewerGroup.GET("/:id/reviews", reviewerController.ListReviewsByReviewer)
	reviewerGroup.POST("", reviewerController.CreateReviewer)
	reviewerGroup.PUT("/:id", reviewerController.UpdateReviewer)
	reviewerGroup.DELETE("/:id", reviewerController.DeleteReviewer)
}
