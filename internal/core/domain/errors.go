package domain

import "errors"

var (
	ErrPostNotFound       = errors.New("post not found")
	ErrIncompletePost     = errors.New("title, content, author and an authenticated user are required")
	ErrInvalidCategory    = errors.New("unknown category")
	ErrForbidden          = errors.New("access forbidden")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrEmptyComment       = errors.New("comment text is required")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccessDenied       = errors.New("access denied")
	ErrTopicRequired      = errors.New("headline required")
	ErrGenerationFailed   = errors.New("generation service failure")
)
