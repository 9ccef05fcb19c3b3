package domain

import (
	"context"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// MaxUsernameLength is the longest username a user can register with.
const MaxUsernameLength = 50

var usernamePattern = regexp.MustCompile(`^\w+$`)

var usernameRules = newUsernameValidator()

func newUsernameValidator() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
	return v
}

// RegisterUser is a registration request. It is the only entity that
// carries a plain password.
type RegisterUser struct {
	Username string
	Password string
	Fullname string
}

// ParseRegisterUser validates {username, password, fullname}, then the
// username length and character rules.
func ParseRegisterUser(attrs Attributes) (RegisterUser, error) {
	const entity = "REGISTER_USER"
	err := attrs.validate(entity,
		field{"username", identField},
		field{"password", identField},
		field{"fullname", identField},
	)
	if err != nil {
		return RegisterUser{}, err
	}

	username := attrs.str("username")
	if err := usernameRules.Var(username, fmt.Sprintf("max=%d", MaxUsernameLength)); err != nil {
		return RegisterUser{}, newValidationError(entity, LimitChar)
	}
	if err := usernameRules.Var(username, "username"); err != nil {
		return RegisterUser{}, newValidationError(entity, RestrictedCharacter)
	}

	return RegisterUser{
		Username: username,
		Password: attrs.str("password"),
		Fullname: attrs.str("fullname"),
	}, nil
}

// RegisteredUser is the public view of a stored user.
type RegisteredUser struct {
	ID       string
	Username string
	Fullname string
}

func ParseRegisteredUser(attrs Attributes) (RegisteredUser, error) {
	err := attrs.validate("REGISTERED_USER",
		field{"id", identField},
		field{"username", identField},
		field{"fullname", identField},
	)
	if err != nil {
		return RegisteredUser{}, err
	}
	return RegisteredUser{
		ID:       attrs.str("id"),
		Username: attrs.str("username"),
		Fullname: attrs.str("fullname"),
	}, nil
}

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	// VerifyAvailableUsername returns an invariant error if the username is taken.
	VerifyAvailableUsername(ctx context.Context, username string) error

	// AddUser stores u, whose Password already holds the hash.
	AddUser(ctx context.Context, u RegisterUser) (RegisteredUser, error)

	// GetPasswordByUsername returns the stored hash or an invariant error if
	// the username is unknown.
	GetPasswordByUsername(ctx context.Context, username string) (string, error)

	GetIDByUsername(ctx context.Context, username string) (string, error)
}

// UserUsecase handles registration.
type UserUsecase interface {
	AddUser(ctx context.Context, payload Attributes) (RegisteredUser, error)
}
