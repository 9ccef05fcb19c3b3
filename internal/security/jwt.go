package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/forum-api/forum-api/domain"
)

type tokenClaims struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTTokenManager signs access and refresh tokens with separate HS256 keys.
// Access tokens expire after AccessTokenAge; refresh tokens live until they
// are removed from storage.
type JWTTokenManager struct {
	AccessTokenKey  []byte
	RefreshTokenKey []byte
	AccessTokenAge  time.Duration
}

var _ domain.AuthenticationTokenManager = (*JWTTokenManager)(nil)

func NewJWTTokenManager(accessKey, refreshKey string, accessAge time.Duration) *JWTTokenManager {
	return &JWTTokenManager{
		AccessTokenKey:  []byte(accessKey),
		RefreshTokenKey: []byte(refreshKey),
		AccessTokenAge:  accessAge,
	}
}

func (m *JWTTokenManager) CreateAccessToken(payload domain.TokenPayload) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID:   payload.ID,
		Username: payload.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.AccessTokenAge)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.AccessTokenKey)
}

func (m *JWTTokenManager) CreateRefreshToken(payload domain.TokenPayload) (string, error) {
	claims := tokenClaims{
		UserID:   payload.ID,
		Username: payload.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.RefreshTokenKey)
}

func (m *JWTTokenManager) VerifyRefreshToken(token string) error {
	if _, err := m.parse(token, m.RefreshTokenKey); err != nil {
		return domain.NewInvariantError("refresh token tidak valid")
	}
	return nil
}

func (m *JWTTokenManager) VerifyAccessToken(token string) (domain.TokenPayload, error) {
	claims, err := m.parse(token, m.AccessTokenKey)
	if err != nil {
		return domain.TokenPayload{}, domain.NewAuthenticationError("access token tidak valid")
	}
	return domain.TokenPayload{ID: claims.UserID, Username: claims.Username}, nil
}

func (m *JWTTokenManager) DecodePayload(token string) (domain.TokenPayload, error) {
	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return domain.TokenPayload{}, domain.NewInvariantError("refresh token tidak valid")
	}
	return domain.TokenPayload{ID: claims.UserID, Username: claims.Username}, nil
}

func (m *JWTTokenManager) parse(token string, key []byte) (*tokenClaims, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	return claims, nil
}
