package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/forum-api/forum-api/domain"
	"github.com/forum-api/forum-api/internal/repository/mysql/model"
)

type userRepository struct {
	DB    *gorm.DB
	idGen domain.IDGenerator
}

var _ domain.UserRepository = (*userRepository)(nil)

// NewUserRepository will create an implementation of domain.UserRepository
func NewUserRepository(db *gorm.DB, idGen domain.IDGenerator) *userRepository {
	return &userRepository{
		DB:    db,
		idGen: idGen,
	}
}

func (m *userRepository) VerifyAvailableUsername(ctx context.Context, username string) error {
	var count int64
	err := m.DB.WithContext(ctx).Model(&model.User{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.NewInvariantError("username tidak tersedia")
	}
	return nil
}

func (m *userRepository) AddUser(ctx context.Context, u domain.RegisterUser) (domain.RegisteredUser, error) {
	userModel := model.NewUserFromDomain("user-"+m.idGen(), u)
	if err := m.DB.WithContext(ctx).Create(userModel).Error; err != nil {
		if isDuplicateEntry(err) {
			return domain.RegisteredUser{}, domain.NewConflictError("username tidak tersedia")
		}
		return domain.RegisteredUser{}, err
	}
	return userModel.ToDomain()
}

func (m *userRepository) GetPasswordByUsername(ctx context.Context, username string) (string, error) {
	var user model.User
	result := m.DB.WithContext(ctx).Select("password").Where("username = ?", username).Find(&user)
	if result.Error != nil {
		return "", result.Error
	}
	if result.RowsAffected == 0 {
		return "", domain.NewInvariantError("username tidak ditemukan")
	}
	return user.Password, nil
}

func (m *userRepository) GetIDByUsername(ctx context.Context, username string) (string, error) {
	var user model.User
	result := m.DB.WithContext(ctx).Select("id").Where("username = ?", username).Find(&user)
	if result.Error != nil {
		return "", result.Error
	}
	if result.RowsAffected == 0 {
		return "", domain.NewInvariantError("user tidak ditemukan")
	}
	return user.ID, nil
}
