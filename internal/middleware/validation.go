package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/envisys/internal/app/models/dto"
)

// BindJSON binds and validates the request body into a T. On failure it
// writes a 400 response and returns false.
func BindJSON[T any](c *gin.Context) (T, bool) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewAPIError(dto.HandleValidationError(err)))
		c.Abort()
		return req, false
	}
	return req, true
}
