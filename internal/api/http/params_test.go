package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLimitOffset(t *testing.T) {
	gin.SetMode(gin.TestMode)

	parse := func(query string) (int, int, bool) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/?"+query, nil)
		return LimitOffset(c)
	}

	t.Run("defaults", func(t *testing.T) {
		limit, offset, ok := parse("")
		assert.True(t, ok)
		assert.Equal(t, DefaultPageSize, limit)
		assert.Equal(t, 0, offset)
	})

	t.Run("explicit values", func(t *testing.T) {
		limit, offset, ok := parse("limit=10&offset=30")
		assert.True(t, ok)
		assert.Equal(t, 10, limit)
		assert.Equal(t, 30, offset)
	})

	t.Run("maximum limit accepted", func(t *testing.T) {
		limit, _, ok := parse("limit=200")
		assert.True(t, ok)
		assert.Equal(t, MaxPageSize, limit)
	})

	t.Run("rejects out-of-range and junk", func(t *testing.T) {
		for _, q := range []string{"limit=0", "limit=-1", "limit=201", "limit=abc", "offset=-1", "offset=x"} {
			_, _, ok := parse(q)
			assert.False(t, ok, q)
		}
	})
}
