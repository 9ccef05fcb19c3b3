package user

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/forum-api/forum-api/domain"
)

type service struct {
	userRepo     domain.UserRepository
	passwordHash domain.PasswordHash
}

var _ domain.UserUsecase = (*service)(nil)

func NewService(userRepo domain.UserRepository, passwordHash domain.PasswordHash) *service {
	return &service{
		userRepo:     userRepo,
		passwordHash: passwordHash,
	}
}

func (s *service) AddUser(ctx context.Context, payload domain.Attributes) (domain.RegisteredUser, error) {
	registerUser, err := domain.ParseRegisterUser(payload)
	if err != nil {
		return domain.RegisteredUser{}, err
	}
	if err := s.userRepo.VerifyAvailableUsername(ctx, registerUser.Username); err != nil {
		return domain.RegisteredUser{}, err
	}

	hashed, err := s.passwordHash.Hash(registerUser.Password)
	if err != nil {
		logrus.Errorf("hash password for %s: %v", registerUser.Username, err)
		return domain.RegisteredUser{}, err
	}
	registerUser.Password = hashed

	return s.userRepo.AddUser(ctx, registerUser)
}
