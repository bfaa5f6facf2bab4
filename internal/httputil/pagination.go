package httputil

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// Pagination bounds shared by every list endpoint.
const (
	DefaultLimit = 50
	MaxLimit     = 100
)

var (
	errInvalidOffset = errors.New("invalid offset parameter: must be a non-negative integer")
	errInvalidLimit  = errors.New("invalid limit parameter: must be between 1 and 100")
)

// ParsePagination reads the offset and limit query parameters. Offset defaults to 0 and
// limit to DefaultLimit; limit must stay within 1..MaxLimit. Both are zero on error.
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	offset, err = ParseIntQuery(c, "offset", 0)
	if err != nil || offset < 0 {
		return 0, 0, errInvalidOffset
	}

	limit, err = ParseIntQuery(c, "limit", DefaultLimit)
	if err != nil || limit < 1 || limit > MaxLimit {
		return 0, 0, errInvalidLimit
	}

	return offset, limit, nil
}
