package domain

import (
	"context"
	"time"
)

// DeletedReplyContent replaces the content of a soft-deleted reply.
const DeletedReplyContent = "**balasan telah dihapus**"

type NewReply struct {
	Content string
}

func ParseNewReply(attrs Attributes) (NewReply, error) {
	if err := attrs.validate("NEW_REPLY", field{"content", identField}); err != nil {
		return NewReply{}, err
	}
	return NewReply{Content: attrs.str("content")}, nil
}

type AddedReply struct {
	ID      string
	Content string
	Owner   string
}

func ParseAddedReply(attrs Attributes) (AddedReply, error) {
	err := attrs.validate("ADDED_REPLY",
		field{"id", identField},
		field{"content", identField},
		field{"owner", identField},
	)
	if err != nil {
		return AddedReply{}, err
	}
	return AddedReply{
		ID:      attrs.str("id"),
		Content: attrs.str("content"),
		Owner:   attrs.str("owner"),
	}, nil
}

// ReplyDetail is a reply as shown under its comment in a ThreadDetail.
type ReplyDetail struct {
	ID       string
	Content  string
	Date     string
	Username string
	IsDelete bool
}

// ParseReplyDetail checks presence, then types, then the isDelete flag.
// Content may be absent or nil only for a deleted reply; a deleted reply
// always exposes DeletedReplyContent.
func ParseReplyDetail(attrs Attributes) (ReplyDetail, error) {
	const entity = "REPLY_DETAIL"

	required := []field{
		{"id", identField},
		{"date", timeField},
		{"username", identField},
	}
	for _, f := range required {
		if !attrs.present(f) {
			return ReplyDetail{}, newValidationError(entity, MissingProperty)
		}
	}
	if _, ok := attrs["isDelete"]; !ok || attrs["isDelete"] == nil {
		return ReplyDetail{}, newValidationError(entity, MissingProperty)
	}
	isDelete, isBool := attrs["isDelete"].(bool)
	content, hasContent := attrs["content"]
	if (!hasContent || content == nil) && !(isBool && isDelete) {
		return ReplyDetail{}, newValidationError(entity, MissingProperty)
	}

	for _, f := range required {
		if !attrs.typed(f) {
			return ReplyDetail{}, newValidationError(entity, InvalidType)
		}
	}
	if content != nil {
		if _, ok := content.(string); !ok {
			return ReplyDetail{}, newValidationError(entity, InvalidType)
		}
	}

	if !isBool {
		return ReplyDetail{}, newValidationError(entity, IsDeleteNotBoolean)
	}

	exposed := attrs.str("content")
	if isDelete {
		exposed = DeletedReplyContent
	}

	return ReplyDetail{
		ID:       attrs.str("id"),
		Content:  exposed,
		Date:     attrs.isoTime("date"),
		Username: attrs.str("username"),
		IsDelete: isDelete,
	}, nil
}

// ReplyRow is a reply as read back from storage, joined with its owner's
// username and tagged with its parent comment.
type ReplyRow struct {
	ID        string
	CommentID string
	Content   string
	Date      time.Time
	Username  string
	IsDelete  bool
}

func (r ReplyRow) Attributes() Attributes {
	return Attributes{
		"id":       r.ID,
		"content":  r.Content,
		"date":     r.Date,
		"username": r.Username,
		"isDelete": r.IsDelete,
	}
}

// ReplyRepository defines the contract for reply persistence
type ReplyRepository interface {
	AddReply(ctx context.Context, ownerID, commentID string, r NewReply) (AddedReply, error)

	// VerifyReplyOwner returns NotFound if the reply does not exist and
	// Forbidden if it exists but is owned by someone else.
	VerifyReplyOwner(ctx context.Context, replyID, ownerID string) error

	// CheckReplyExists returns NotFound unless replyID belongs to commentID.
	CheckReplyExists(ctx context.Context, replyID, commentID string) error

	// DeleteReply flags the reply as deleted; the row is kept.
	DeleteReply(ctx context.Context, replyID string) error

	// GetRepliesByCommentIDs returns the replies of all given comments in a
	// single query, ordered by date ascending. Empty input yields an empty
	// result without touching storage.
	GetRepliesByCommentIDs(ctx context.Context, commentIDs []string) ([]ReplyRow, error)
}

type ReplyUsecase interface {
	AddReply(ctx context.Context, ownerID, threadID, commentID string, payload Attributes) (AddedReply, error)
	DeleteReply(ctx context.Context, ownerID, threadID, commentID, replyID string) error
}
