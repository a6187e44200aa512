package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const CtxUserID = "user_id"

// UserID extracts the authenticated user's ID from the Gin context.
// It is set by RequireUser; uuid.Nil means the request was not authenticated.
func UserID(c *gin.Context) uuid.UUID {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return uuid.Nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
