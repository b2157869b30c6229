package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-backend/internal/domains/user"
	"library-backend/internal/graph"
	"library-backend/pkg/jwt"
	"library-backend/pkg/logger"
)

const bearerPrefix = "bearer "

// Auth is the authorization gate. It runs once per request, before any
// resolver: a valid bearer token resolves to a user profile stored in
// the request context; anything else leaves the request unauthenticated
// and lets the individual operations decide whether identity is
// required. It never rejects a request by itself.
func Auth(tokens *jwt.Manager, users user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			c.Next()
			return
		}

		claims, err := tokens.Verify(strings.TrimSpace(header[len(bearerPrefix):]))
		if err != nil {
			logger.Debug("rejecting bearer token: " + err.Error())
			c.Next()
			return
		}

		id, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			c.Next()
			return
		}

		profile, err := users.GetProfile(c.Request.Context(), id)
		if err != nil {
			// Token outlived the account; treat as unauthenticated.
			c.Next()
			return
		}

		c.Request = c.Request.WithContext(graph.WithCurrentUser(c.Request.Context(), profile))
		c.Next()
	}
}
