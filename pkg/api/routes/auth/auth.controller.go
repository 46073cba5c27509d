package auth

import (
	"net/http"

	"login-backend/pkg/api/endpoint"
	"login-backend/pkg/api/errors"
	"login-backend/pkg/api/middleware"
	"login-backend/pkg/enum"
	"login-backend/pkg/jwt"
	"login-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func RegisterAuthEndpoints(r *gin.RouterGroup) {
	r.Use(middleware.LoggerMiddleware("Auth"))
	r.POST("/login", loginController)
	r.GET("/check", AuthGuard(), checkLoginController)
}

func outcomeFor(code enum.ErrorCode) string {
	switch code {
	case enum.ValidationError, enum.MalformedRequest:
		return metrics.OutcomeInvalidInput
	case enum.UserNotFound:
		return metrics.OutcomeUserNotFound
	case enum.InvalidPassword:
		return metrics.OutcomeInvalidPassword
	default:
		return metrics.OutcomeInternalError
	}
}

func loginController(c *gin.Context) {
	payload, deps, apiErr := endpoint.SetupEndpoint[LoginRequest](c)
	if apiErr != nil {
		if deps != nil {
			deps.Metrics.ObserveLogin(outcomeFor(apiErr.Error))
		}
		c.JSON(apiErr.Code, apiErr)
		return
	}

	tokens, loginErr := loginService(c.Request.Context(), deps.Users, deps.Config, *payload, deps.Logger)
	if loginErr != nil {
		deps.Metrics.ObserveLogin(outcomeFor(loginErr.Code))
		res := loginErr.ApiError()
		c.JSON(res.Code, res)
		return
	}

	deps.Metrics.ObserveLogin(metrics.OutcomeSuccess)
	c.JSON(http.StatusOK, LoginResponse{
		Message:      "Login successful",
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

func checkLoginController(c *gin.Context) {
	deps, apiErr := endpoint.SetupContext(c)
	if apiErr != nil {
		c.JSON(apiErr.Code, apiErr)
		return
	}

	user, ok := c.Get("user")
	if !ok {
		c.JSON(http.StatusInternalServerError, errors.ApiError{
			Code:    http.StatusInternalServerError,
			Error:   enum.ApiError,
			Message: "internal error",
			Details: "User not found in context",
		})
		return
	}

	payload := user.(*jwt.JWTTokenPayload)
	deps.Logger.PrintfDebug("User with id: %s is currently logged in", payload.UserID)

	c.JSON(http.StatusOK, CheckResponse{UserID: payload.UserID})
}
