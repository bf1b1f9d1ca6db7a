package domain

import "errors"

var (
	ErrKeyNotFound         = errors.New("key not found")
	ErrUnsupportedProvider = errors.New("unsupported auth provider")
	ErrInvalidCredential   = errors.New("invalid credential")
	ErrUnknownBaseURL      = errors.New("base url is not an allowed endpoint")
)
