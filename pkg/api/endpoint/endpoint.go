package endpoint

import (
	"fmt"
	"net/http"
	"strings"

	"login-backend/pkg/api/errors"
	"login-backend/pkg/config"
	"login-backend/pkg/database"
	"login-backend/pkg/enum"
	"login-backend/pkg/logger"
	"login-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validate   *validator.Validate
	translator ut.Translator
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	english := en.New()
	uni := ut.New(english, english)
	translator, _ = uni.GetTranslator("en")

	if err := en_translations.RegisterDefaultTranslations(validate, translator); err != nil {
		panic(err)
	}
}

// Dependencies groups what the middlewares put into the gin context.
type Dependencies struct {
	Logger  *logger.Logger
	Users   database.UserRepository
	Config  *config.Config
	Metrics *metrics.Metrics
}

func internalError(details string) *errors.ApiError {
	return &errors.ApiError{
		Code:    http.StatusInternalServerError,
		Error:   enum.ApiError,
		Message: "internal error",
		Details: details,
	}
}

// SetupContext collects the request dependencies from the gin context.
// Metrics are optional, everything else must be present.
func SetupContext(c *gin.Context) (*Dependencies, *errors.ApiError) {
	var missing []string

	rawLogger, _ := c.Get("logger")
	log, ok := rawLogger.(*logger.Logger)
	if !ok {
		missing = append(missing, "logger")
	}

	rawUsers, _ := c.Get("users")
	users, ok := rawUsers.(database.UserRepository)
	if !ok {
		missing = append(missing, "users")
	}

	rawCfg, _ := c.Get("config")
	cfg, ok := rawCfg.(*config.Config)
	if !ok {
		missing = append(missing, "config")
	}

	var m *metrics.Metrics
	if rawMetrics, exists := c.Get("metrics"); exists {
		m, _ = rawMetrics.(*metrics.Metrics)
	}

	if len(missing) > 0 {
		return nil, internalError(fmt.Sprintf("missing from context: %s", strings.Join(missing, ", ")))
	}

	return &Dependencies{
		Logger:  log,
		Users:   users,
		Config:  cfg,
		Metrics: m,
	}, nil
}

// SetupEndpoint collects the request dependencies and binds the JSON body into T.
// Fields tagged with `validate` are checked and reported in english.
func SetupEndpoint[T any](c *gin.Context) (*T, *Dependencies, *errors.ApiError) {
	deps, apiErr := SetupContext(c)
	if apiErr != nil {
		return nil, nil, apiErr
	}

	var payload T
	if err := c.ShouldBindJSON(&payload); err != nil {
		deps.Logger.PrintfDebug("Could not bind request body: %s", err)
		return nil, deps, &errors.ApiError{
			Code:    http.StatusBadRequest,
			Error:   enum.MalformedRequest,
			Message: "Malformed request body",
		}
	}

	if err := validate.Struct(payload); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, deps, internalError(err.Error())
		}

		messages := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			messages = append(messages, fieldErr.Translate(translator))
		}

		deps.Logger.PrintfDebug("Request body failed validation: %s", strings.Join(messages, "; "))
		return nil, deps, &errors.ApiError{
			Code:    http.StatusBadRequest,
			Error:   enum.ValidationError,
			Message: messages[0],
			Details: messages,
		}
	}

	return &payload, deps, nil
}
