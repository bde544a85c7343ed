package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultUpcomingLimit is used when the limit query parameter is
	// missing, malformed, zero or negative.
	DefaultUpcomingLimit = 5
	// MaxLimit caps any caller-supplied limit.
	MaxLimit = 50
)

// ClampLimit normalizes a caller-supplied limit to (0, max], falling back
// to def for anything non-positive.
func ClampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

// ParseLimitParam extracts and clamps the limit query parameter.
func ParseLimitParam(c *gin.Context, def, max int) int {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(def))
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		return def
	}
	return ClampLimit(limit, def, max)
}
