package bootstrap

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSetGinMode(t *testing.T) {
	defer gin.SetMode(gin.TestMode)

	cases := []struct {
		env  string
		want string
	}{
		{"production", gin.ReleaseMode},
		{"PROD", gin.ReleaseMode},
		{"release", gin.ReleaseMode},
		{"test", gin.TestMode},
		{"development", gin.DebugMode},
		{"", gin.DebugMode},
		{" Production ", gin.ReleaseMode},
	}

	for _, tc := range cases {
		SetGinMode(tc.env)
		assert.Equal(t, tc.want, gin.Mode(), "env=%q", tc.env)
	}
}
