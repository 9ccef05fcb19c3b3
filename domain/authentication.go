package domain

import "context"

// UserLogin is a login request.
type UserLogin struct {
	Username string
	Password string
}

func ParseUserLogin(attrs Attributes) (UserLogin, error) {
	err := attrs.validate("USER_LOGIN",
		field{"username", identField},
		field{"password", identField},
	)
	if err != nil {
		return UserLogin{}, err
	}
	return UserLogin{
		Username: attrs.str("username"),
		Password: attrs.str("password"),
	}, nil
}

// NewAuth is the token pair issued on login.
type NewAuth struct {
	AccessToken  string
	RefreshToken string
}

func ParseNewAuth(attrs Attributes) (NewAuth, error) {
	err := attrs.validate("NEW_AUTH",
		field{"accessToken", identField},
		field{"refreshToken", identField},
	)
	if err != nil {
		return NewAuth{}, err
	}
	return NewAuth{
		AccessToken:  attrs.str("accessToken"),
		RefreshToken: attrs.str("refreshToken"),
	}, nil
}

// ParseRefreshToken validates the {refreshToken} payload of the refresh and
// logout flows.
func ParseRefreshToken(entity string, attrs Attributes) (string, error) {
	if err := attrs.validate(entity, field{"refreshToken", identField}); err != nil {
		return "", err
	}
	return attrs.str("refreshToken"), nil
}

// TokenPayload is what access and refresh tokens carry.
type TokenPayload struct {
	ID       string
	Username string
}

// AuthenticationRepository stores the refresh tokens currently in use.
type AuthenticationRepository interface {
	AddToken(ctx context.Context, token string) error

	// CheckAvailabilityToken returns an invariant error if token is not stored.
	CheckAvailabilityToken(ctx context.Context, token string) error

	DeleteToken(ctx context.Context, token string) error
}

// AuthenticationUsecase handles login, token refresh and logout.
type AuthenticationUsecase interface {
	Login(ctx context.Context, payload Attributes) (NewAuth, error)
	RefreshAuthentication(ctx context.Context, payload Attributes) (string, error)
	Logout(ctx context.Context, payload Attributes) error
}

// PasswordHash hashes and checks passwords.
type PasswordHash interface {
	Hash(password string) (string, error)

	// ComparePassword returns an authentication error on mismatch.
	ComparePassword(password, hashed string) error
}

// AuthenticationTokenManager issues and verifies signed tokens.
type AuthenticationTokenManager interface {
	CreateAccessToken(payload TokenPayload) (string, error)
	CreateRefreshToken(payload TokenPayload) (string, error)

	// VerifyRefreshToken returns an invariant error for a bad refresh token.
	VerifyRefreshToken(token string) error

	// VerifyAccessToken returns an authentication error for a bad or
	// expired access token.
	VerifyAccessToken(token string) (TokenPayload, error)

	// DecodePayload reads the claims of a token whose signature was
	// already verified.
	DecodePayload(token string) (TokenPayload, error)
}

// IDGenerator returns a fresh random identifier suffix for stored rows.
type IDGenerator func() string
