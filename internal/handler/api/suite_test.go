//go:build unit

package api_test

import (
	"net/http"

	"fablab-billing/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// fakeAuth mimics RequireAuth: no Authorization header means 401, otherwise the
// given actor is placed in the context.
func fakeAuth(actor *user.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", actor.ID)
		c.Set("user_role", actor.Role)
		c.Next()
	}
}

func newActor(role user.Role) user.Actor {
	return user.NewActor(uuid.New(), role)
}
