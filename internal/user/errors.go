package user

import "errors"

// Domain-specific errors for the user package.
var (
	ErrMissingMail  = errors.New("user mail is required")
	ErrUnknownModel = errors.New("model is not served by any configured provider")
)
