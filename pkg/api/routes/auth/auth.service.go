package auth

import (
	"context"
	"errors"
	"time"

	"login-backend/pkg/config"
	"login-backend/pkg/database"
	"login-backend/pkg/enum"
	"login-backend/pkg/jwt"
	"login-backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

func loginService(ctx context.Context, users database.UserRepository, cfg *config.Config, payload LoginRequest, logger *logger.Logger) (*jwt.JWTPair, *LoginError) {
	if result := ValidateLogin(payload); !result.Valid {
		logger.PrintfDebug("Login rejected by validation: %s", result.Message)
		return nil, validationFailure(result.Message)
	}

	user, loginErr := checkCredentials(ctx, users, payload, logger)
	if loginErr != nil {
		return nil, loginErr
	}

	tokens, loginErr := issueTokens(ctx, users, cfg, user, logger)
	if loginErr != nil {
		return nil, loginErr
	}

	logger.Printf("Logged in user: %s", user.ID)

	return tokens, nil
}

func checkCredentials(ctx context.Context, users database.UserRepository, payload LoginRequest, logger *logger.Logger) (*database.User, *LoginError) {
	user, err := users.FindByEmail(ctx, payload.Email)
	if errors.Is(err, database.ErrUserNotFound) {
		logger.PrintfWarning("User with email: %s not found", payload.Email)
		return nil, &LoginError{Code: enum.UserNotFound, Message: msgUserNotFound}
	}
	if err != nil {
		logger.PrintfError("Error looking up user with email: %s: %s", payload.Email, err)
		return nil, internalFailure(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			// a stored value that is not a bcrypt hash is still just a failed login for the client
			logger.PrintfError("Stored password hash of user %s is unusable: %s", user.ID, err)
		}
		logger.PrintfWarning("Wrong password for user with email: %s", payload.Email)
		return nil, &LoginError{Code: enum.InvalidPassword, Message: msgInvalidPassword}
	}

	return user, nil
}

// issueTokens signs both tokens before touching the database, so a signing
// failure leaves the stored refresh token untouched.
func issueTokens(ctx context.Context, users database.UserRepository, cfg *config.Config, user *database.User, logger *logger.Logger) (*jwt.JWTPair, *LoginError) {
	now := time.Now()

	accessTokenPayload := jwt.CreateTokenPayload(user.ID, now, cfg.AccessTokenTTL(), false)
	refreshTokenPayload := jwt.CreateTokenPayload(user.ID, now, cfg.RefreshTokenTTL(), true)

	accessToken, err := jwt.GenerateJwt(cfg.AccessTokenSecret, &accessTokenPayload)
	if err != nil {
		logger.PrintfError("Error generating access token: %s", err)
		return nil, internalFailure(err)
	}

	refreshToken, err := jwt.GenerateJwt(cfg.RefreshTokenSecret, &refreshTokenPayload)
	if err != nil {
		logger.PrintfError("Error generating refresh token: %s", err)
		return nil, internalFailure(err)
	}

	if err := users.SaveRefreshToken(ctx, user.ID, refreshToken); err != nil {
		logger.PrintfError("Error saving refresh token for user %s: %s", user.ID, err)
		return nil, internalFailure(err)
	}

	return &jwt.JWTPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
