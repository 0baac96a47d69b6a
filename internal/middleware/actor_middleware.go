package middleware

import (
	"net/http"
	"strings"

	"todoboard/internal/auth"

	"github.com/gin-gonic/gin"
)

// ActorKey is the gin context key holding the acting auth.Actor.
const ActorKey = "actor"

// ActorMiddleware resolves who is acting on the board. A bearer token from
// "switch user" wins; without one the legacy ?user=<name> query parameter is
// accepted. Neither is required: anonymous requests pass through.
func ActorMiddleware(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			if name := strings.TrimSpace(c.Query("user")); name != "" {
				c.Set(ActorKey, auth.Actor{UserName: name})
			}
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		actor, err := issuer.Parse(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(ActorKey, actor)
		c.Next()
	}
}

// ActorFrom returns the acting user, if any.
func ActorFrom(c *gin.Context) (auth.Actor, bool) {
	value, exists := c.Get(ActorKey)
	if !exists {
		return auth.Actor{}, false
	}
	actor, ok := value.(auth.Actor)
	return actor, ok
}
