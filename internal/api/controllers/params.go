package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pokereview/pkg/utils"
)

// parseID rejects non-numeric and non-positive path ids with a 400 before
// any store access happens.
func parseID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid "+name+" parameter")
		return 0, false
	}
	return id, true
}

// parseQueryID does the same for foreign-key ids passed as query params.
func parseQueryID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Query(name))
	if err != nil || id <= 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid "+name+" parameter")
		return 0, false
	}
	return id, true
}
