package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forum-api/forum-api/domain"
)

func assertValidation(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr), "expected a ValidationError, got %T", err)
	assert.Equal(t, code, vErr.Error())
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestParseNewThread(t *testing.T) {
	tests := []struct {
		name  string
		attrs domain.Attributes
		code  string
	}{
		{"missing body", domain.Attributes{"title": "sebuah thread"}, "NEW_THREAD.NOT_CONTAIN_NEEDED_PROPERTY"},
		{"empty title", domain.Attributes{"title": "", "body": "sebuah body"}, "NEW_THREAD.NOT_CONTAIN_NEEDED_PROPERTY"},
		{"nil title", domain.Attributes{"title": nil, "body": "sebuah body"}, "NEW_THREAD.NOT_CONTAIN_NEEDED_PROPERTY"},
		{"wrong types", domain.Attributes{"title": 123, "body": true}, "NEW_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION"},
		{"missing wins over wrong type", domain.Attributes{"title": 123}, "NEW_THREAD.NOT_CONTAIN_NEEDED_PROPERTY"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := domain.ParseNewThread(tc.attrs)
			assertValidation(t, err, tc.code)
		})
	}

	t.Run("success", func(t *testing.T) {
		got, err := domain.ParseNewThread(domain.Attributes{"title": "sebuah thread", "body": "sebuah body"})
		require.NoError(t, err)
		assert.Equal(t, domain.NewThread{Title: "sebuah thread", Body: "sebuah body"}, got)
	})
}

func TestParseAddedThread(t *testing.T) {
	_, err := domain.ParseAddedThread(domain.Attributes{"id": "thread-123", "title": "sebuah thread"})
	assertValidation(t, err, "ADDED_THREAD.NOT_CONTAIN_NEEDED_PROPERTY")

	_, err = domain.ParseAddedThread(domain.Attributes{"id": 123, "title": "sebuah thread", "owner": []string{"user-123"}})
	assertValidation(t, err, "ADDED_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION")

	got, err := domain.ParseAddedThread(domain.Attributes{"id": "thread-123", "title": "sebuah thread", "owner": "user-123"})
	require.NoError(t, err)
	assert.Equal(t, domain.AddedThread{ID: "thread-123", Title: "sebuah thread", Owner: "user-123"}, got)
}

func TestParseThreadDetail(t *testing.T) {
	base := func() domain.Attributes {
		return domain.Attributes{
			"id":       "thread-123",
			"title":    "sebuah thread",
			"body":     "sebuah body",
			"date":     "2021-08-08T07:19:09.775Z",
			"username": "dicoding",
			"comments": []domain.CommentDetail{},
		}
	}

	t.Run("missing comments", func(t *testing.T) {
		attrs := base()
		delete(attrs, "comments")
		_, err := domain.ParseThreadDetail(attrs)
		assertValidation(t, err, "THREAD_DETAIL.NOT_CONTAIN_NEEDED_PROPERTY")
	})

	t.Run("date of wrong type", func(t *testing.T) {
		attrs := base()
		attrs["date"] = 123
		_, err := domain.ParseThreadDetail(attrs)
		assertValidation(t, err, "THREAD_DETAIL.NOT_MEET_DATA_TYPE_SPECIFICATION")
	})

	t.Run("comments not a list", func(t *testing.T) {
		attrs := base()
		attrs["comments"] = "nope"
		_, err := domain.ParseThreadDetail(attrs)
		assertValidation(t, err, "THREAD_DETAIL.NOT_MEET_DATA_TYPE_SPECIFICATION")
	})

	t.Run("time value is normalized", func(t *testing.T) {
		attrs := base()
		attrs["date"] = time.Date(2021, 8, 8, 14, 19, 9, 775_000_000, time.FixedZone("WIB", 7*3600))
		got, err := domain.ParseThreadDetail(attrs)
		require.NoError(t, err)
		assert.Equal(t, "2021-08-08T07:19:09.775Z", got.Date)
	})

	t.Run("raw comments are normalized in order", func(t *testing.T) {
		attrs := base()
		attrs["comments"] = []any{
			map[string]any{"id": "comment-1", "username": "johndoe", "date": "2021-08-08T07:22:33.555Z", "content": "pertama", "isDelete": false, "replies": []any{}},
			domain.Attributes{"id": "comment-2", "username": "dicoding", "date": "2021-08-08T07:26:21.338Z", "content": "kedua", "isDelete": true, "replies": []any{}},
		}
		got, err := domain.ParseThreadDetail(attrs)
		require.NoError(t, err)
		require.Len(t, got.Comments, 2)
		assert.Equal(t, "comment-1", got.Comments[0].ID)
		assert.Equal(t, "pertama", got.Comments[0].Content)
		assert.Equal(t, "comment-2", got.Comments[1].ID)
		assert.Equal(t, domain.DeletedCommentContent, got.Comments[1].Content)
	})

	t.Run("success", func(t *testing.T) {
		got, err := domain.ParseThreadDetail(base())
		require.NoError(t, err)
		assert.Equal(t, "thread-123", got.ID)
		assert.Equal(t, "sebuah thread", got.Title)
		assert.Equal(t, "sebuah body", got.Body)
		assert.Equal(t, "2021-08-08T07:19:09.775Z", got.Date)
		assert.Equal(t, "dicoding", got.Username)
		assert.NotNil(t, got.Comments)
		assert.Empty(t, got.Comments)
	})
}
