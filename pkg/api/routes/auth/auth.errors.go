package auth

import (
	"fmt"
	"net/http"

	"login-backend/pkg/api/errors"
	"login-backend/pkg/enum"
)

const (
	msgUserNotFound    = "user not found"
	msgInvalidPassword = "invalid password"
	msgInternalError   = "internal error"
)

// LoginError is the failed result of one step of the login flow.
// Code decides the HTTP status, Err is kept for logs and never sent to the client.
type LoginError struct {
	Code    enum.ErrorCode
	Message string
	Err     error
}

func (e *LoginError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoginError) Unwrap() error {
	return e.Err
}

func validationFailure(message string) *LoginError {
	return &LoginError{Code: enum.ValidationError, Message: message}
}

func internalFailure(err error) *LoginError {
	return &LoginError{Code: enum.ApiError, Message: msgInternalError, Err: err}
}

func statusFor(code enum.ErrorCode) int {
	switch code {
	case enum.ValidationError, enum.MalformedRequest, enum.UserNotFound, enum.InvalidPassword:
		return http.StatusBadRequest
	case enum.Unauthorized, enum.InvalidToken:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func (e *LoginError) ApiError() *errors.ApiError {
	return &errors.ApiError{
		Code:    statusFor(e.Code),
		Error:   e.Code,
		Message: e.Message,
	}
}
