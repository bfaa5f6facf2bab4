package httputil

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ParseUUIDParam parses the named path parameter as a UUID.
func ParseUUIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s parameter: must be a valid UUID", name)
	}
	return id, nil
}

// ParseFloatQuery parses an optional finite float query parameter, returning defaultValue when absent.
func ParseFloatQuery(c *gin.Context, name string, defaultValue float64) (float64, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("invalid %s parameter: must be a number", name)
	}
	return value, nil
}

// ParseIntQuery parses an optional integer query parameter, returning defaultValue when absent.
func ParseIntQuery(c *gin.Context, name string, defaultValue int) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter: must be an integer", name)
	}
	return value, nil
}
