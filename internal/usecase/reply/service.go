package reply

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/forum-api/forum-api/domain"
)

type service struct {
	replyRepo   domain.ReplyRepository
	commentRepo domain.CommentRepository
	threadRepo  domain.ThreadRepository
}

var _ domain.ReplyUsecase = (*service)(nil)

func NewService(replyRepo domain.ReplyRepository, commentRepo domain.CommentRepository, threadRepo domain.ThreadRepository) *service {
	return &service{
		replyRepo:   replyRepo,
		commentRepo: commentRepo,
		threadRepo:  threadRepo,
	}
}

// mustExist resolves the thread and the comment under it, in that order.
func (s *service) mustExist(ctx context.Context, threadID, commentID string) error {
	if err := s.threadRepo.VerifyThreadExists(ctx, threadID); err != nil {
		return err
	}
	return s.commentRepo.CheckCommentExists(ctx, commentID, threadID)
}

func (s *service) AddReply(ctx context.Context, ownerID, threadID, commentID string, payload domain.Attributes) (domain.AddedReply, error) {
	newReply, err := domain.ParseNewReply(payload)
	if err != nil {
		return domain.AddedReply{}, err
	}
	if err := s.mustExist(ctx, threadID, commentID); err != nil {
		return domain.AddedReply{}, err
	}
	return s.replyRepo.AddReply(ctx, ownerID, commentID, newReply)
}

func (s *service) DeleteReply(ctx context.Context, ownerID, threadID, commentID, replyID string) error {
	if err := s.mustExist(ctx, threadID, commentID); err != nil {
		return err
	}
	if err := s.replyRepo.CheckReplyExists(ctx, replyID, commentID); err != nil {
		return err
	}
	if err := s.replyRepo.VerifyReplyOwner(ctx, replyID, ownerID); err != nil {
		logrus.Warnf("user %s may not delete reply %s: %v", ownerID, replyID, err)
		return err
	}
	return s.replyRepo.DeleteReply(ctx, replyID)
}
