package security

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/forum-api/forum-api/domain"
)

// BcryptPasswordHash hashes passwords with bcrypt.
type BcryptPasswordHash struct {
	Cost int
}

var _ domain.PasswordHash = (*BcryptPasswordHash)(nil)

func NewBcryptPasswordHash(cost int) *BcryptPasswordHash {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHash{Cost: cost}
}

func (b *BcryptPasswordHash) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), b.Cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (b *BcryptPasswordHash) ComparePassword(password, hashed string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)); err != nil {
		return domain.NewAuthenticationError("kredensial yang Anda masukkan salah")
	}
	return nil
}
