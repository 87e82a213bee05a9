package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/detailing-scheduler/internal/httperr"
	"github.com/BruksfildServices01/detailing-scheduler/internal/usecase/auth"
)

const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextUserRole = "userRole"
)

type TokenParser interface {
	ParseToken(raw string) (*auth.Claims, error)
}

func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Authorization required.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Expected a Bearer token.")
			c.Abort()
			return
		}

		claims, err := tokens.ParseToken(parts[1])
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Invalid or expired token.")
			c.Abort()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			httperr.Unauthorized(c, "invalid_token_payload", "Invalid token.")
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextUserRole, claims.Role)

		c.Next()
	}
}
