package middleware

import (
	"login-backend/pkg/api/errors"
	"login-backend/pkg/config"
	"login-backend/pkg/enum"
	"login-backend/pkg/logger"

	"io"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

var logOutput io.Writer = os.Stdout

// SetLogOutput redirects request loggers, mostly useful in tests.
func SetLogOutput(w io.Writer) {
	logOutput = w
}

func LoggerMiddleware(moduleName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawCfg, ok := c.Get("config")
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, errors.ApiError{
				Code:    http.StatusInternalServerError,
				Error:   enum.ApiError,
				Message: "internal error",
				Details: "Config not found in context",
			})
			return
		}

		cfg, ok := rawCfg.(*config.Config)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, errors.ApiError{
				Code:    http.StatusInternalServerError,
				Error:   enum.ApiError,
				Message: "internal error",
				Details: "Config is not of type *config.Config",
			})
			return
		}

		c.Set("logger", logger.NewLogger(logOutput, moduleName, cfg.LogLevel, c.ClientIP()))
		c.Next()
	}
}
