package domain

import (
	"context"
	"time"
)

// DeletedCommentContent replaces the content of a soft-deleted comment.
const DeletedCommentContent = "**komentar telah dihapus**"

// NewComment is the user supplied part of a comment about to be created.
type NewComment struct {
	Content string
}

func ParseNewComment(attrs Attributes) (NewComment, error) {
	if err := attrs.validate("NEW_COMMENT", field{"content", identField}); err != nil {
		return NewComment{}, err
	}
	return NewComment{Content: attrs.str("content")}, nil
}

type AddedComment struct {
	ID      string
	Content string
	Owner   string
}

func ParseAddedComment(attrs Attributes) (AddedComment, error) {
	err := attrs.validate("ADDED_COMMENT",
		field{"id", identField},
		field{"content", identField},
		field{"owner", identField},
	)
	if err != nil {
		return AddedComment{}, err
	}
	return AddedComment{
		ID:      attrs.str("id"),
		Content: attrs.str("content"),
		Owner:   attrs.str("owner"),
	}, nil
}

// CommentDetail is a comment as shown inside a ThreadDetail. When IsDelete
// is set, Content is always DeletedCommentContent.
type CommentDetail struct {
	ID       string
	Username string
	Date     string
	Content  string
	IsDelete bool
	Replies  []ReplyDetail
}

// ParseCommentDetail validates the payload, masks the content of deleted
// comments and normalizes every reply into a ReplyDetail.
func ParseCommentDetail(attrs Attributes) (CommentDetail, error) {
	const entity = "COMMENT_DETAIL"
	err := attrs.validate(entity,
		field{"id", identField},
		field{"username", identField},
		field{"date", timeField},
		field{"content", textField},
		field{"isDelete", boolField},
		field{"replies", listField},
	)
	if err != nil {
		return CommentDetail{}, err
	}

	replies, err := normalizeReplies(entity, attrs["replies"])
	if err != nil {
		return CommentDetail{}, err
	}

	isDelete := attrs.boolean("isDelete")
	content := attrs.str("content")
	if isDelete {
		content = DeletedCommentContent
	}

	return CommentDetail{
		ID:       attrs.str("id"),
		Username: attrs.str("username"),
		Date:     attrs.isoTime("date"),
		Content:  content,
		IsDelete: isDelete,
		Replies:  replies,
	}, nil
}

func normalizeReplies(entity string, v any) ([]ReplyDetail, error) {
	if typed, ok := v.([]ReplyDetail); ok {
		res := make([]ReplyDetail, len(typed))
		copy(res, typed)
		return res, nil
	}

	items, ok := toItems(v)
	if !ok {
		return nil, newValidationError(entity, InvalidType)
	}
	res := make([]ReplyDetail, 0, len(items))
	for _, item := range items {
		if r, ok := item.(ReplyDetail); ok {
			res = append(res, r)
			continue
		}
		raw, ok := asAttributes(item)
		if !ok {
			return nil, newValidationError(entity, InvalidType)
		}
		detail, err := ParseReplyDetail(raw)
		if err != nil {
			return nil, err
		}
		res = append(res, detail)
	}
	return res, nil
}

// CommentRow is a comment as read back from storage, joined with its
// owner's username.
type CommentRow struct {
	ID       string
	Content  string
	Date     time.Time
	Username string
	IsDelete bool
}

// Attributes turns the row into the payload ParseCommentDetail expects.
func (r CommentRow) Attributes(replies []ReplyDetail) Attributes {
	if replies == nil {
		replies = []ReplyDetail{}
	}
	return Attributes{
		"id":       r.ID,
		"username": r.Username,
		"date":     r.Date,
		"content":  r.Content,
		"isDelete": r.IsDelete,
		"replies":  replies,
	}
}

// CommentRepository defines the contract for comment persistence
type CommentRepository interface {
	AddComment(ctx context.Context, ownerID, threadID string, c NewComment) (AddedComment, error)

	// VerifyCommentOwner returns NotFound if the comment does not exist and
	// Forbidden if it exists but is owned by someone else.
	VerifyCommentOwner(ctx context.Context, commentID, ownerID string) error

	// CheckCommentExists returns NotFound unless commentID belongs to threadID.
	CheckCommentExists(ctx context.Context, commentID, threadID string) error

	// DeleteComment flags the comment as deleted; the row is kept.
	DeleteComment(ctx context.Context, commentID string) error

	// GetCommentsByThreadID returns the thread's comments ordered by date ascending.
	GetCommentsByThreadID(ctx context.Context, threadID string) ([]CommentRow, error)
}

type CommentUsecase interface {
	AddComment(ctx context.Context, ownerID, threadID string, payload Attributes) (AddedComment, error)
	DeleteComment(ctx context.Context, ownerID, threadID, commentID string) error
}
