package mysql_test

import (
	"context"
	"regexp"
	"testing"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/forum-api/forum-api/domain"
	mysqlrepo "github.com/forum-api/forum-api/internal/repository/mysql"
)

func TestUserRepository_VerifyAvailableUsername(t *testing.T) {
	query := regexp.QuoteMeta("SELECT count(*) FROM `users` WHERE username = ?")

	t.Run("taken", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).WithArgs("dicoding").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		err := mysqlrepo.NewUserRepository(db, fixedID).VerifyAvailableUsername(context.TODO(), "dicoding")

		assert.ErrorIs(t, err, domain.ErrBadParamInput)
		assert.EqualError(t, err, "username tidak tersedia")
	})

	t.Run("available", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).WithArgs("dicoding").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		err := mysqlrepo.NewUserRepository(db, fixedID).VerifyAvailableUsername(context.TODO(), "dicoding")

		assert.NoError(t, err)
	})
}

func TestUserRepository_AddUser(t *testing.T) {
	u := domain.RegisterUser{Username: "dicoding", Password: "encrypted_password", Fullname: "Dicoding Indonesia"}

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("INSERT INTO `users`").WillReturnResult(sqlmock.NewResult(0, 1))

		got, err := mysqlrepo.NewUserRepository(db, fixedID).AddUser(context.TODO(), u)

		require.NoError(t, err)
		assert.Equal(t, domain.RegisteredUser{ID: "user-123", Username: "dicoding", Fullname: "Dicoding Indonesia"}, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stored row without fullname", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("INSERT INTO `users`").WillReturnResult(sqlmock.NewResult(0, 1))

		_, err := mysqlrepo.NewUserRepository(db, fixedID).
			AddUser(context.TODO(), domain.RegisterUser{Username: "dicoding", Password: "encrypted_password"})

		assert.EqualError(t, err, "REGISTERED_USER.NOT_CONTAIN_NEEDED_PROPERTY")
	})

	t.Run("duplicate username", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("INSERT INTO `users`").
			WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry 'dicoding'"})

		_, err := mysqlrepo.NewUserRepository(db, fixedID).AddUser(context.TODO(), u)

		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestUserRepository_GetPasswordByUsername(t *testing.T) {
	query := "SELECT .*password.* FROM `users` WHERE username = \\?"

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).WithArgs("dicoding").
			WillReturnRows(sqlmock.NewRows([]string{"password"}).AddRow("encrypted_password"))

		got, err := mysqlrepo.NewUserRepository(db, fixedID).GetPasswordByUsername(context.TODO(), "dicoding")

		require.NoError(t, err)
		assert.Equal(t, "encrypted_password", got)
	})

	t.Run("unknown username", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).WithArgs("nobody").WillReturnRows(sqlmock.NewRows([]string{"password"}))

		_, err := mysqlrepo.NewUserRepository(db, fixedID).GetPasswordByUsername(context.TODO(), "nobody")

		assert.ErrorIs(t, err, domain.ErrBadParamInput)
		assert.EqualError(t, err, "username tidak ditemukan")
	})
}

func TestUserRepository_GetIDByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT .*id.* FROM `users` WHERE username = \\?").WithArgs("dicoding").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("user-123"))

	got, err := mysqlrepo.NewUserRepository(db, fixedID).GetIDByUsername(context.TODO(), "dicoding")

	require.NoError(t, err)
	assert.Equal(t, "user-123", got)
}
