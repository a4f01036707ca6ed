package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHandleServiceErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
	}{
		{ErrPokemonNotFound, http.StatusNotFound},
		{ErrCategoryNotFound, http.StatusNotFound},
		{ErrCountryNotFound, http.StatusNotFound},
		{ErrOwnerNotFound, http.StatusNotFound},
		{ErrReviewerNotFound, http.StatusNotFound},
		{ErrReviewNotFound, http.StatusNotFound},
		{ErrPokemonAlreadyExists, http.StatusConflict},
		{ErrReviewAlreadyExists, http.StatusConflict},
		{ErrIDMismatch, http.StatusBadRequest},
		{ErrDatabaseError, http.StatusInternalServerError},
		{errors.New("something unexpected"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Set("trace_id", "test-trace")

		HandleServiceError(c, tc.err)
		assert.Equal(t, tc.status, rec.Code, "error %v", tc.err)
	}
}

func TestRespondCreatedSetsLocation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Set("trace_id", "test-trace")

	RespondCreated(c, "/api/pokemon/7", map[string]int{"id": 7}, "created")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/pokemon/7", rec.Header().Get("Location"))
}
