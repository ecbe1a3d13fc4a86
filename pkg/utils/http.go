package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

var ErrInvalidID = errors.New("id must be a positive integer")

// ParseIDParam reads a path parameter as an entity identifier. Identifiers
// are strictly positive; "0", negatives and non-numeric input all fail.
func ParseIDParam(c *gin.Context, param string) (uint, error) {
	idStr := c.Param(param)
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return uint(id), nil
}
