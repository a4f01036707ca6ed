package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"pokereview/internal/models/request_models"
	"pokereview/internal/services"
	"pokereview/pkg/utils"
)

type PokemonController struct {
	pokemonService services.PokemonServiceInterface
}

func NewPokemonController(pokemonService services.PokemonServiceInterface) *PokemonController {
	return &PokemonController{
		pokemonService: pokemonService,
	}
}

func (p *PokemonController) ListPokemon(c *gin.Context) {
	pokemons, err := p.pokemonService.ListPokemon(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pokemons, "Pokemon fetched successfully")
}

func (p *PokemonController) GetPokemonByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	pokemon, err := p.pokemonService.GetPokemonByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pokemon, "Pokemon fetched successfully")
}

func (p *PokemonController) GetPokemonRating(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	rating, err := p.pokemonService.GetPokemonRating(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, rating, "Rating fetched successfully")
}

// CreatePokemon godoc
// @Summary Create a pokemon
// @Description Create a pokemon attached to an existing owner and category
// @Tags Pokemon
// @Accept json
// @Produce json
// @Param ownerId query int true "Owner id"
// @Param catId query int true "Category id"
// @Param request body request_models.CreatePokemonRequest true "Pokemon payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400,404,409 {object} utils.APIResponse
// @Router /api/pokemon [post]
func (p *PokemonController) CreatePokemon(c *gin.Context) {
	ownerID, ok := parseQueryID(c, "ownerId")
	if !ok {
		return
	}
	categoryID, ok := parseQueryID(c, "catId")
	if !ok {
		return
	}

	var req request_models.CreatePokemonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	pokemon, err := p.pokemonService.CreatePokemon(c.Request.Context(), req, ownerID, categoryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	location := fmt.Sprintf("/api/pokemon/%d", pokemon.ID)
	utils.RespondCreated(c, location, pokemon, "Pokemon created successfully")
}

func (p *PokemonController) UpdatePokemon(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ownerID, ok := parseQueryID(c, "ownerId")
	if !ok {
		return
	}
	categoryID, ok := parseQueryID(c, "catId")
	if !ok {
		return
	}

	var req request_models.UpdatePokemonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := p.pokemonService.UpdatePokemon(c.Request.Context(), id, req, ownerID, categoryID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}

func (p *PokemonController) DeletePokemon(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := p.pokemonService.DeletePokemon(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}
