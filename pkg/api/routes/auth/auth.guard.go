package auth

import (
	"net/http"
	"strings"

	"login-backend/pkg/api/endpoint"
	"login-backend/pkg/api/errors"
	"login-backend/pkg/enum"
	"login-backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AuthGuard accepts requests that carry a valid access token as
// "Authorization: Bearer <token>" and stores its payload under "user".
func AuthGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		deps, apiErr := endpoint.SetupContext(c)
		if apiErr != nil {
			c.AbortWithStatusJSON(apiErr.Code, apiErr)
			return
		}

		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errors.ApiError{
				Code:    http.StatusUnauthorized,
				Error:   enum.Unauthorized,
				Message: "missing access token",
			})
			return
		}

		payload, err := jwt.ValidateAccessToken(deps.Config.AccessTokenSecret, token)
		if err != nil {
			deps.Logger.PrintfWarning("Rejected access token: %s", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errors.ApiError{
				Code:    http.StatusUnauthorized,
				Error:   enum.InvalidToken,
				Message: "invalid access token",
			})
			return
		}

		c.Set("user", payload)
		c.Next()
	}
}
