package authentication

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/forum-api/forum-api/domain"
)

type service struct {
	userRepo     domain.UserRepository
	authRepo     domain.AuthenticationRepository
	tokenManager domain.AuthenticationTokenManager
	passwordHash domain.PasswordHash
}

var _ domain.AuthenticationUsecase = (*service)(nil)

func NewService(
	userRepo domain.UserRepository,
	authRepo domain.AuthenticationRepository,
	tokenManager domain.AuthenticationTokenManager,
	passwordHash domain.PasswordHash,
) *service {
	return &service{
		userRepo:     userRepo,
		authRepo:     authRepo,
		tokenManager: tokenManager,
		passwordHash: passwordHash,
	}
}

// Login checks the credentials and issues a token pair. The refresh token is
// stored so it can later be refreshed or revoked.
func (s *service) Login(ctx context.Context, payload domain.Attributes) (domain.NewAuth, error) {
	login, err := domain.ParseUserLogin(payload)
	if err != nil {
		return domain.NewAuth{}, err
	}

	hashed, err := s.userRepo.GetPasswordByUsername(ctx, login.Username)
	if err != nil {
		return domain.NewAuth{}, err
	}
	if err := s.passwordHash.ComparePassword(login.Password, hashed); err != nil {
		logrus.Warnf("failed login for %s", login.Username)
		return domain.NewAuth{}, err
	}

	id, err := s.userRepo.GetIDByUsername(ctx, login.Username)
	if err != nil {
		return domain.NewAuth{}, err
	}

	claims := domain.TokenPayload{ID: id, Username: login.Username}
	accessToken, err := s.tokenManager.CreateAccessToken(claims)
	if err != nil {
		return domain.NewAuth{}, err
	}
	refreshToken, err := s.tokenManager.CreateRefreshToken(claims)
	if err != nil {
		return domain.NewAuth{}, err
	}

	auth, err := domain.ParseNewAuth(domain.Attributes{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
	if err != nil {
		return domain.NewAuth{}, err
	}

	if err := s.authRepo.AddToken(ctx, auth.RefreshToken); err != nil {
		return domain.NewAuth{}, err
	}
	return auth, nil
}

func (s *service) RefreshAuthentication(ctx context.Context, payload domain.Attributes) (string, error) {
	refreshToken, err := domain.ParseRefreshToken("REFRESH_AUTHENTICATION", payload)
	if err != nil {
		return "", err
	}

	if err := s.tokenManager.VerifyRefreshToken(refreshToken); err != nil {
		return "", err
	}
	if err := s.authRepo.CheckAvailabilityToken(ctx, refreshToken); err != nil {
		return "", err
	}

	claims, err := s.tokenManager.DecodePayload(refreshToken)
	if err != nil {
		return "", err
	}
	return s.tokenManager.CreateAccessToken(claims)
}

func (s *service) Logout(ctx context.Context, payload domain.Attributes) error {
	refreshToken, err := domain.ParseRefreshToken("DELETE_AUTHENTICATION", payload)
	if err != nil {
		return err
	}
	if err := s.authRepo.CheckAvailabilityToken(ctx, refreshToken); err != nil {
		return err
	}
	return s.authRepo.DeleteToken(ctx, refreshToken)
}
