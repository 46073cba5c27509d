package enum

type ErrorCode string

const (
	// internal, never caused by the client
	ApiError ErrorCode = "ApiError"

	MalformedRequest ErrorCode = "MalformedRequest"
	ValidationError  ErrorCode = "ValidationError"
	UserNotFound     ErrorCode = "UserNotFound"
	InvalidPassword  ErrorCode = "InvalidPassword"
	AlreadyExists    ErrorCode = "AlreadyExists"
	Unauthorized     ErrorCode = "Unauthorized"
	InvalidToken     ErrorCode = "InvalidToken"
)
