package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/priceintel/pricepulse/internal/domain/apperr"
	"github.com/priceintel/pricepulse/internal/domain/dto"
	"github.com/priceintel/pricepulse/internal/logger"
)

// ErrorHandler maps service errors attached via c.Error onto HTTP
// responses using the shared error taxonomy:
//
//   - validation errors  -> 400
//   - not-found errors   -> 404
//   - everything else    -> 500 (invariant violations included; they are
//     bug signals, not caller branches)
//
// Handlers stay free of status-code mapping: they attach the error and
// return.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	switch {
	case errors.Is(err, apperr.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request", err))
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("not found", err))
	default:
		logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal server error", err))
	}
}

// AbortWithError stops the handler chain and writes a standardized error
// body with the given status.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
