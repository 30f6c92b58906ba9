package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"toy-marketplace/internal/logger"
	"toy-marketplace/internal/repository"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// writeRepoError maps repository sentinel errors onto the API's error
// taxonomy. Anything unrecognized is logged and reported as a uniform 500;
// the client never sees a hung response on a store failure.
func writeRepoError(c *gin.Context, log *logger.Logger, err error, op string) {
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, repository.ErrOutOfStock):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		log.Error().Err(err).Str("op", op).Msg("store operation failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// parseSortOrder accepts the two order labels the storefront sends. Any
// other value is a bad request, not a silent empty body.
func parseSortOrder(value string) (ascending, ok bool) {
	switch value {
	case "Ascending":
		return true, true
	case "Descending":
		return false, true
	default:
		return false, false
	}
}
