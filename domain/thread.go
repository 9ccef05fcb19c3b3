package domain

import (
	"context"
	"time"
)

// NewThread is the user supplied part of a thread about to be created.
type NewThread struct {
	Title string
	Body  string
}

// ParseNewThread validates a {title, body} payload.
func ParseNewThread(attrs Attributes) (NewThread, error) {
	err := attrs.validate("NEW_THREAD",
		field{"title", identField},
		field{"body", identField},
	)
	if err != nil {
		return NewThread{}, err
	}
	return NewThread{
		Title: attrs.str("title"),
		Body:  attrs.str("body"),
	}, nil
}

// AddedThread is what the repository reports back after persisting a thread.
type AddedThread struct {
	ID    string
	Title string
	Owner string
}

func ParseAddedThread(attrs Attributes) (AddedThread, error) {
	err := attrs.validate("ADDED_THREAD",
		field{"id", identField},
		field{"title", identField},
		field{"owner", identField},
	)
	if err != nil {
		return AddedThread{}, err
	}
	return AddedThread{
		ID:    attrs.str("id"),
		Title: attrs.str("title"),
		Owner: attrs.str("owner"),
	}, nil
}

// ThreadDetail is the read-only projection of a thread with its comments,
// each comment carrying its replies.
type ThreadDetail struct {
	ID       string
	Title    string
	Body     string
	Date     string
	Username string
	Comments []CommentDetail
}

// ParseThreadDetail validates the thread fields and normalizes comments into
// CommentDetail values, keeping their order.
func ParseThreadDetail(attrs Attributes) (ThreadDetail, error) {
	const entity = "THREAD_DETAIL"
	err := attrs.validate(entity,
		field{"id", identField},
		field{"title", identField},
		field{"body", identField},
		field{"date", timeField},
		field{"username", identField},
		field{"comments", listField},
	)
	if err != nil {
		return ThreadDetail{}, err
	}

	comments, err := normalizeComments(entity, attrs["comments"])
	if err != nil {
		return ThreadDetail{}, err
	}

	return ThreadDetail{
		ID:       attrs.str("id"),
		Title:    attrs.str("title"),
		Body:     attrs.str("body"),
		Date:     attrs.isoTime("date"),
		Username: attrs.str("username"),
		Comments: comments,
	}, nil
}

func normalizeComments(entity string, v any) ([]CommentDetail, error) {
	if typed, ok := v.([]CommentDetail); ok {
		res := make([]CommentDetail, len(typed))
		copy(res, typed)
		return res, nil
	}

	items, ok := toItems(v)
	if !ok {
		return nil, newValidationError(entity, InvalidType)
	}
	res := make([]CommentDetail, 0, len(items))
	for _, item := range items {
		switch c := item.(type) {
		case CommentDetail:
			res = append(res, c)
		default:
			raw, ok := asAttributes(c)
			if !ok {
				return nil, newValidationError(entity, InvalidType)
			}
			detail, err := ParseCommentDetail(raw)
			if err != nil {
				return nil, err
			}
			res = append(res, detail)
		}
	}
	return res, nil
}

// toItems flattens the slice shapes accepted by listField into []any.
func toItems(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []Attributes:
		items := make([]any, len(s))
		for i := range s {
			items[i] = s[i]
		}
		return items, true
	case []map[string]any:
		items := make([]any, len(s))
		for i := range s {
			items[i] = s[i]
		}
		return items, true
	}
	return nil, false
}

// ThreadRow is a thread as read back from storage, joined with its owner's
// username.
type ThreadRow struct {
	ID       string
	Title    string
	Body     string
	Date     time.Time
	Username string
}

// Attributes turns the row into the payload ParseThreadDetail expects.
func (r ThreadRow) Attributes(comments []CommentDetail) Attributes {
	if comments == nil {
		comments = []CommentDetail{}
	}
	return Attributes{
		"id":       r.ID,
		"title":    r.Title,
		"body":     r.Body,
		"date":     r.Date,
		"username": r.Username,
		"comments": comments,
	}
}

// ThreadRepository defines the contract for thread persistence
type ThreadRepository interface {
	// AddThread persists t owned by ownerID and returns the stored thread.
	AddThread(ctx context.Context, ownerID string, t NewThread) (AddedThread, error)

	// VerifyThreadExists returns a NotFound error if threadID does not resolve.
	VerifyThreadExists(ctx context.Context, threadID string) error

	// GetThreadByID returns a NotFound error if threadID does not resolve.
	GetThreadByID(ctx context.Context, threadID string) (ThreadRow, error)
}

type ThreadUsecase interface {
	AddThread(ctx context.Context, ownerID string, payload Attributes) (AddedThread, error)
	GetThreadDetail(ctx context.Context, threadID string) (ThreadDetail, error)
}
