package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"pokereview/internal/models/request_models"
	"pokereview/internal/services"
	"pokereview/pkg/utils"
)

type CountryController struct {
	countryService services.CountryServiceInterface
}

func NewCountryController(countryService services.CountryServiceInterface) *CountryController {
	return &CountryController{
		countryService: countryService,
	}
}

func (cc *CountryController) ListCountries(c *gin.Context) {
	countries, err := cc.countryService.ListCountries(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, countries, "Countries fetched successfully")
}

func (cc *CountryController) GetCountryByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	country, err := cc.countryService.GetCountryByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, country, "Country fetched successfully")
}

func (cc *CountryController) GetCountryByOwner(c *gin.Context) {
	ownerID, ok := parseID(c, "ownerId")
	if !ok {
		return
	}

	country, err := cc.countryService.GetCountryByOwner(c.Request.Context(), ownerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, country, "Country fetched successfully")
}

func (cc *CountryController) CreateCountry(c *gin.Context) {
	var req request_models.CreateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	country, err := cc.countryService.CreateCountry(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	location := fmt.Sprintf("/api/country/%d", country.ID)
	utils.RespondCreated(c, location, country, "Country created successfully")
}

func (cc *CountryController) UpdateCountry(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := cc.countryService.UpdateCountry(c.Request.Context(), id, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}

func (cc *CountryController) DeleteCountry(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := cc.countryService.DeleteCountry(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}
