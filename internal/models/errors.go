package models

import "errors"

// Application-wide errors
var (
	ErrNotFound = errors.New("resource not found")

	// users and authentication
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this username already exists")
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserBanned         = errors.New("user is banned")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")

	// tokens
	ErrTokenInvalid   = errors.New("token is invalid")
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenNotFound  = errors.New("token not found in storage")

	// stories
	ErrStoryNotFound    = errors.New("story not found")
	ErrShareRateLimited = errors.New("too many share requests, try again later")

	ErrInternalServer = errors.New("internal server error")
	ErrInvalidInput   = errors.New("invalid input data")
)

// Numeric error codes returned in ErrorResponse.Code.
const (
	ErrCodeBadRequest       = 40000
	ErrCodeValidation       = 40001
	ErrCodeTokenInvalid     = 40101
	ErrCodeTokenExpired     = 40102
	ErrCodeWrongCredentials = 40103
	ErrCodeForbidden        = 40300
	ErrCodeUserBanned       = 40301
	ErrCodeNotFound         = 40400
	ErrCodeUserNotFound     = 40401
	ErrCodeStoryNotFound    = 40402
	ErrCodeDuplicateUser    = 40901
	ErrCodeDuplicateEmail   = 40902
	ErrCodeRateLimited      = 42900
	ErrCodeInternal         = 50000
)
