package model

import "github.com/forum-api/forum-api/domain"

type User struct {
	ID       string `gorm:"primaryKey;type:varchar(50)"`
	Username string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Password string `gorm:"type:text;not null"`
	Fullname string `gorm:"type:text;not null"`
}

func (User) TableName() string {
	return "users"
}

func NewUserFromDomain(id string, u domain.RegisterUser) *User {
	return &User{
		ID:       id,
		Username: u.Username,
		Password: u.Password,
		Fullname: u.Fullname,
	}
}

// ToDomain never exposes the password hash.
func (m *User) ToDomain() (domain.RegisteredUser, error) {
	return domain.ParseRegisteredUser(domain.Attributes{
		"id":       m.ID,
		"username": m.Username,
		"fullname": m.Fullname,
	})
}
