//go:build unit

package api_test

import (
	"net/http"

	"ezrent/internal/domain/user"
	"ezrent/internal/handler/middleware"
	"ezrent/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const bearer = "bearer-token"

// fakeAuth stands in for AuthMiddleware.RequireAuth: any bearer token authenticates as actor.
func fakeAuth(actor *shared.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Access token required"})
			return
		}
		c.Set("user_id", actor.UserID)
		c.Set("user_role", actor.Role)
		c.Next()
	}
}

func newRouter(mws ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.Use(mws...)
	return r
}

func customerActor() *shared.Actor {
	return &shared.Actor{UserID: mustUUID("11111111-1111-1111-1111-111111111111"), Role: user.RoleCustomer}
}

func ownerActor() *shared.Actor {
	return &shared.Actor{UserID: mustUUID("22222222-2222-2222-2222-222222222222"), Role: user.RoleOwner}
}

func mustUUID(s string) uuid.UUID {
	return uuid.MustParse(s)
}
