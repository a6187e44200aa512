package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(ctx context.Context) error {
	return f.err
}

func getHealth(t *testing.T, db DBPinger, path string) HealthResponse {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHealthHandler("agency-backend", "1.2.3", db).RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, path)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestHealthCheck(t *testing.T) {
	t.Run("healthy when database answers", func(t *testing.T) {
		for _, path := range []string{"/health", "/healthz"} {
			resp := getHealth(t, &fakePinger{}, path)
			assert.Equal(t, "healthy", resp.Status)
			assert.Equal(t, "up", resp.DB)
			assert.Equal(t, "agency-backend", resp.Service)
			assert.Equal(t, "1.2.3", resp.Version)
			assert.False(t, resp.Timestamp.IsZero())
		}
	})

	t.Run("degraded when database is unreachable", func(t *testing.T) {
		resp := getHealth(t, &fakePinger{err: errors.New("connection refused")}, "/health")
		assert.Equal(t, "degraded", resp.Status)
		assert.Equal(t, "down", resp.DB)
	})
}
