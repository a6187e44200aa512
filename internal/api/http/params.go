package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// LimitOffset parses pagination query params with the shared defaults.
// Out-of-range values are reported via ok=false.
func LimitOffset(c *gin.Context) (limit, offset int, ok bool) {
	limit = DefaultPageSize
	offset = 0

	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > MaxPageSize {
			return 0, 0, false
		}
		limit = n
	}

	if raw := c.Query("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return 0, 0, false
		}
		offset = n
	}

	return limit, offset, true
}
