package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrForbidden will throw if the actor does not own the requested item
	ErrForbidden = errors.New("you are not allowed to access this item")
	// ErrUnauthorized will throw if the credentials or tokens are not valid
	ErrUnauthorized = errors.New("authentication failed")
)

// ClientError is an error whose message can be shown to API clients as is.
// Kind is one of the sentinels above, so callers match it with errors.Is.
type ClientError struct {
	Kind    error
	Message string
}

func (e *ClientError) Error() string {
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Kind
}

// NewNotFoundError reports a thread, comment, reply or user that does not resolve.
func NewNotFoundError(message string) error {
	return &ClientError{Kind: ErrNotFound, Message: message}
}

// NewAuthorizationError reports an existing resource the actor does not own.
func NewAuthorizationError(message string) error {
	return &ClientError{Kind: ErrForbidden, Message: message}
}

// NewAuthenticationError reports wrong credentials or a missing identity.
func NewAuthenticationError(message string) error {
	return &ClientError{Kind: ErrUnauthorized, Message: message}
}

// NewInvariantError reports a request that breaks a business rule.
func NewInvariantError(message string) error {
	return &ClientError{Kind: ErrBadParamInput, Message: message}
}

// NewConflictError reports a write rejected by a uniqueness constraint.
func NewConflictError(message string) error {
	return &ClientError{Kind: ErrConflict, Message: message}
}
