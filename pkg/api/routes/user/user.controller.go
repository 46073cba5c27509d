package user

import (
	"net/http"

	"login-backend/pkg/api/endpoint"
	"login-backend/pkg/api/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterUserEndpoints(r *gin.RouterGroup) {
	r.Use(middleware.LoggerMiddleware("User"))
	r.POST("/signup", createUserController)
}

func createUserController(c *gin.Context) {
	payload, deps, apiErr := endpoint.SetupEndpoint[CreateUserRequest](c)
	if apiErr != nil {
		c.JSON(apiErr.Code, apiErr)
		return
	}

	user, apiErr := createUser(c.Request.Context(), deps.Users, payload, deps.Config, deps.Logger)
	if apiErr != nil {
		c.JSON(apiErr.Code, apiErr)
		return
	}

	c.JSON(http.StatusCreated, user)
}
