package apperror

import "errors"

var (
	ErrGameNotFound      = errors.New("game not found")
	ErrCorruptedHistory  = errors.New("game history is corrupted")
	ErrUnknownAction     = errors.New("unknown action")
	ErrMalformedRequest  = errors.New("malformed request")
	ErrEmptyRedisAddress = errors.New("redis address string is empty")
)
