package middleware

import (
	"login-backend/pkg/database"

	"github.com/gin-gonic/gin"
)

// Adds the user repository to the Gin context.
// Handlers reach the database only through this repository.
func UserRepositoryMiddleware(users database.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("users", users)
		c.Next()
	}
}
