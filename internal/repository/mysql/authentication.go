package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/forum-api/forum-api/domain"
	"github.com/forum-api/forum-api/internal/repository/mysql/model"
)

type authenticationRepository struct {
	DB *gorm.DB
}

var _ domain.AuthenticationRepository = (*authenticationRepository)(nil)

func NewAuthenticationRepository(db *gorm.DB) *authenticationRepository {
	return &authenticationRepository{DB: db}
}

func (a *authenticationRepository) AddToken(ctx context.Context, token string) error {
	err := a.DB.WithContext(ctx).Create(&model.Authentication{Token: token}).Error
	if isDuplicateEntry(err) {
		return domain.NewConflictError("refresh token sudah terdaftar")
	}
	return err
}

func (a *authenticationRepository) CheckAvailabilityToken(ctx context.Context, token string) error {
	var count int64
	err := a.DB.WithContext(ctx).Model(&model.Authentication{}).Where("token = ?", token).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.NewInvariantError("refresh token tidak ditemukan di database")
	}
	return nil
}

func (a *authenticationRepository) DeleteToken(ctx context.Context, token string) error {
	return a.DB.WithContext(ctx).Where("token = ?", token).Delete(&model.Authentication{}).Error
}
