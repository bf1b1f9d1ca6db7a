package application

import "errors"

// ArgumentParseErrorPrefix starts every local argument parse failure message.
const ArgumentParseErrorPrefix = "can't parse arguments"

var (
	ErrNoSession            = errors.New("not logged in")
	ErrAppIDRequired        = errors.New("app id is required")
	ErrFunctionNameRequired = errors.New("function name is required")
	ErrArgumentParse        = errors.New(ArgumentParseErrorPrefix)
	ErrOperationInFlight    = errors.New("another session operation is in progress")
	ErrInvocationInFlight   = errors.New("another function call is in progress")
)
