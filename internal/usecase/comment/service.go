package comment

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/forum-api/forum-api/domain"
)

type service struct {
	commentRepo domain.CommentRepository
	threadRepo  domain.ThreadRepository
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, threadRepo domain.ThreadRepository) *service {
	return &service{
		commentRepo: commentRepo,
		threadRepo:  threadRepo,
	}
}

func (s *service) AddComment(ctx context.Context, ownerID, threadID string, payload domain.Attributes) (domain.AddedComment, error) {
	newComment, err := domain.ParseNewComment(payload)
	if err != nil {
		return domain.AddedComment{}, err
	}
	if err := s.threadRepo.VerifyThreadExists(ctx, threadID); err != nil {
		return domain.AddedComment{}, err
	}
	return s.commentRepo.AddComment(ctx, ownerID, threadID, newComment)
}

// DeleteComment checks the thread, then the comment under it, then
// ownership, and only then flags the comment as deleted.
func (s *service) DeleteComment(ctx context.Context, ownerID, threadID, commentID string) error {
	if err := s.threadRepo.VerifyThreadExists(ctx, threadID); err != nil {
		return err
	}
	if err := s.commentRepo.CheckCommentExists(ctx, commentID, threadID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyCommentOwner(ctx, commentID, ownerID); err != nil {
		logrus.Warnf("user %s may not delete comment %s: %v", ownerID, commentID, err)
		return err
	}
	return s.commentRepo.DeleteComment(ctx, commentID)
}
