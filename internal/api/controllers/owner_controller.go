package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"pokereview/internal/models/request_models"
	"pokereview/internal/services"
	"pokereview/pkg/utils"
)

type OwnerController struct {
	ownerService services.OwnerServiceInterface
}

func NewOwnerController(ownerService services.OwnerServiceInterface) *OwnerController {
	return &OwnerController{
		ownerService: ownerService,
	}
}

func (oc *OwnerController) ListOwners(c *gin.Context) {
	owners, err := oc.ownerService.ListOwners(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, owners, "Owners fetched successfully")
}

func (oc *OwnerController) GetOwnerByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	owner, err := oc.ownerService.GetOwnerByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, owner, "Owner fetched successfully")
}

func (oc *OwnerController) ListPokemonByOwner(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	pokemons, err := oc.ownerService.ListPokemonByOwner(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pokemons, "Pokemon fetched successfully")
}

func (oc *OwnerController) CreateOwner(c *gin.Context) {
	countryID, ok := parseQueryID(c, "countryId")
	if !ok {
		return
	}

	var req request_models.CreateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	owner, err := oc.ownerService.CreateOwner(c.Request.Context(), req, countryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	location := fmt.Sprintf("/api/owner/%d", owner.ID)
	utils.RespondCreated(c, location, owner, "Owner created successfully")
}

func (oc *OwnerController) UpdateOwner(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	countryID, ok := parseQueryID(c, "countryId")
	if !ok {
		return
	}

	var req request_models.UpdateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := oc.ownerService.UpdateOwner(c.Request.Context(), id, req, countryID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}

func (oc *OwnerController) DeleteOwner(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := oc.ownerService.DeleteOwner(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}
