package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/majidkambarath/restaurant-pos/internal/presentation/http/dto/response"
	"github.com/majidkambarath/restaurant-pos/pkg/utils"
)

// AuthMiddleware creates a JWT authentication middleware. Every protected
// request carries a terminal token; the terminal ID it names becomes the
// session key for all downstream handlers.
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		tokenString := parts[1]

		// Validate the token
		claims, err := jwtManager.ValidateToken(tokenString)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		// Set terminal info in context
		c.Set("terminal_id", claims.TerminalID)
		c.Set("operator", claims.Operator)

		c.Next()
	}
}

// GetTerminalID extracts the terminal ID set by AuthMiddleware. Empty
// string means the request is unauthenticated.
func GetTerminalID(c *gin.Context) string {
	terminalIDVal, exists := c.Get("terminal_id")
	if !exists {
		return ""
	}
	terminalID, ok := terminalIDVal.(string)
	if !ok {
		return ""
	}
	return terminalID
}
