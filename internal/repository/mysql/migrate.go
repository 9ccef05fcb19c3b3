package mysql

import (
	"gorm.io/gorm"

	"github.com/forum-api/forum-api/internal/repository/mysql/model"
)

// Migrate creates or updates every table, parents first so the cascading
// foreign keys resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Authentication{},
		&model.Thread{},
		&model.Comment{},
		&model.Reply{},
	)
}
