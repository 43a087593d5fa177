package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"course-catalog-backend/internal/shared/response"
	"course-catalog-backend/pkg/jwt"
	"course-catalog-backend/pkg/logger"
)

const (
	ContextUserID   = "userID"
	ContextUserName = "userName"
)

// AuthMiddleware - Middleware xác thực JWT token
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Lấy token từ Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		// 2. Extract token từ "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		// 3. Verify và parse JWT
		claims, err := manager.ValidateAccessToken(parts[1])
		if err != nil {
			logger.Info("rejected access token", map[string]interface{}{
				"request_id": c.GetString(ContextRequestID),
				"error":      err.Error(),
			})
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		if claims.UserID == "" {
			response.Unauthorized(c, "invalid user ID in token")
			c.Abort()
			return
		}

		// 4. Set user vào context
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserName, claims.Name)

		c.Next()
	}
}

// CurrentUserID returns the authenticated user id set by AuthMiddleware
func CurrentUserID(c *gin.Context) (string, bool) {
	id := c.GetString(ContextUserID)
	return id, id != ""
}
