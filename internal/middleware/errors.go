package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gmarinho/stocklens/internal/domain/dto"
	"github.com/gmarinho/stocklens/internal/logger"
)

// ErrorHandler converts errors attached to the gin context via
// c.Error() into a standardized 500 response, unless a handler has
// already written one.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled request error")
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}

// AbortWithError writes a standardized error response with the given
// status and stops the handler chain.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
