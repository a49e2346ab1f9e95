package variable

import "errors"

var (
	ErrReservedKey = errors.New("variable name is reserved by the platform")
	ErrInjectedKey = errors.New("variable is platform-injected and cannot be modified")
	ErrInvalidKey  = errors.New("variable name is invalid")
	ErrNotFound    = errors.New("variable not found")
	ErrEmptyInput  = errors.New("no variables provided")
	ErrBadDotenv   = errors.New("could not parse dotenv content")
)
