package user

import (
	"context"
	e "errors"
	"net/http"

	"login-backend/pkg/api/errors"
	"login-backend/pkg/config"
	"login-backend/pkg/database"
	"login-backend/pkg/enum"
	"login-backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

func createUser(ctx context.Context, users database.UserRepository, payload *CreateUserRequest, cfg *config.Config, logger *logger.Logger) (*database.User, *errors.ApiError) {
	_, err := users.FindByEmail(ctx, payload.Email)
	if err == nil {
		logger.PrintfWarning("User with email: %s already exists", payload.Email)
		return nil, &errors.ApiError{
			Code:    http.StatusConflict,
			Error:   enum.AlreadyExists,
			Message: "user already exists",
		}
	}
	if !e.Is(err, database.ErrUserNotFound) {
		logger.PrintfError("Error looking up user with email: %s: %s", payload.Email, err)
		return nil, &errors.ApiError{
			Code:    http.StatusInternalServerError,
			Error:   enum.ApiError,
			Message: "internal error",
		}
	}

	password, err := bcrypt.GenerateFromPassword([]byte(payload.Password), cfg.SaltRounds)
	if err != nil {
		logger.PrintfError("Error hashing password: %s", err)
		return nil, &errors.ApiError{
			Code:    http.StatusInternalServerError,
			Error:   enum.ApiError,
			Message: "internal error",
		}
	}

	user := database.User{
		Email:    payload.Email,
		Name:     payload.Name,
		Password: string(password),
	}

	if err := users.Create(ctx, &user); err != nil {
		// lost a race against a concurrent signup with the same email
		if e.Is(err, database.ErrUserExists) {
			return nil, &errors.ApiError{
				Code:    http.StatusConflict,
				Error:   enum.AlreadyExists,
				Message: "user already exists",
			}
		}
		logger.PrintfError("Error creating user: %s", err)
		return nil, &errors.ApiError{
			Code:    http.StatusInternalServerError,
			Error:   enum.ApiError,
			Message: "internal error",
		}
	}

	logger.Printf("Created user: %s", user.ID)

	return &user, nil
}
