package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrMissingSecret  = errors.New("jwt secret is not configured")
	ErrInvalidToken   = errors.New("invalid token")
	ErrWrongTokenKind = errors.New("token is of the wrong kind")
)

// JWTTokenPayload is the claim set shared by access and refresh tokens.
type JWTTokenPayload struct {
	UserID    string `json:"userId"`
	IsRefresh bool   `json:"isRefresh"`
	jwt.RegisteredClaims
}

type JWTPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// CreateTokenPayload builds claims for userID valid from issuedAt for ttl.
// Every payload gets a fresh random ID so two tokens issued within the same second differ.
func CreateTokenPayload(userID string, issuedAt time.Time, ttl time.Duration, isRefresh bool) JWTTokenPayload {
	return JWTTokenPayload{
		UserID:    userID,
		IsRefresh: isRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}
}

func GenerateJwt[T jwt.Claims](secret string, payload T) (string, error) {
	if secret == "" {
		return "", ErrMissingSecret
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

func ValidateToken(secret string, tokenString string) (*JWTTokenPayload, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}

	payload := &JWTTokenPayload{}
	token, err := jwt.ParseWithClaims(tokenString, payload, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !token.Valid || payload.UserID == "" {
		return nil, ErrInvalidToken
	}

	return payload, nil
}

func ValidateAccessToken(secret string, tokenString string) (*JWTTokenPayload, error) {
	payload, err := ValidateToken(secret, tokenString)
	if err != nil {
		return nil, err
	}
	if payload.IsRefresh {
		return nil, ErrWrongTokenKind
	}
	return payload, nil
}

func ValidateRefreshToken(secret string, tokenString string) (*JWTTokenPayload, error) {
	payload, err := ValidateToken(secret, tokenString)
	if err != nil {
		return nil, err
	}
	if !payload.IsRefresh {
		return nil, ErrWrongTokenKind
	}
	return payload, nil
}
