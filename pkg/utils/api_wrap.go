package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

// RespondCreated sets the Location header to the get-by-id route of the
// created resource.
func RespondCreated(c *gin.Context, location string, data interface{}, message string) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinel errors onto the HTTP status
// contract. Anything unrecognized is logged and reported as a generic 500 so
// store internals never leak to the caller.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPokemonNotFound):
		RespondError(c, http.StatusNotFound, "Pokemon not found")
	case errors.Is(err, ErrCategoryNotFound):
		RespondError(c, http.StatusNotFound, "Category not found")
	case errors.Is(err, ErrCountryNotFound):
		RespondError(c, http.StatusNotFound, "Country not found")
	case errors.Is(err, ErrOwnerNotFound):
		RespondError(c, http.StatusNotFound, "Owner not found")
	case errors.Is(err, ErrReviewerNotFound):
		RespondError(c, http.StatusNotFound, "Reviewer not found")
	case errors.Is(err, ErrReviewNotFound):
		RespondError(c, http.StatusNotFound, "Review not found")
	case errors.Is(err, ErrPokemonAlreadyExists):
		RespondError(c, http.StatusConflict, "Pokemon with that name already exists")
	case errors.Is(err, ErrCategoryAlreadyExists):
		RespondError(c, http.StatusConflict, "Category with that name already exists")
	case errors.Is(err, ErrCountryAlreadyExists):
		RespondError(c, http.StatusConflict, "Country with that name already exists")
	case errors.Is(err, ErrOwnerAlreadyExists):
		RespondError(c, http.StatusConflict, "Owner with that name already exists")
	case errors.Is(err, ErrReviewerAlreadyExists):
		RespondError(c, http.StatusConflict, "Reviewer with that name already exists")
	case errors.Is(err, ErrReviewAlreadyExists):
		RespondError(c, http.StatusConflict, "Review with that title already exists")
	case errors.Is(err, ErrIDMismatch):
		RespondError(c, http.StatusBadRequest, "Path id does not match body id")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
