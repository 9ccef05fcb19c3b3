package thread

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/forum-api/forum-api/domain"
)

type service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	replyRepo   domain.ReplyRepository
}

var _ domain.ThreadUsecase = (*service)(nil)

// NewService will create a new thread service object
func NewService(t domain.ThreadRepository, c domain.CommentRepository, r domain.ReplyRepository) *service {
	return &service{
		threadRepo:  t,
		commentRepo: c,
		replyRepo:   r,
	}
}

func (s *service) AddThread(ctx context.Context, ownerID string, payload domain.Attributes) (domain.AddedThread, error) {
	newThread, err := domain.ParseNewThread(payload)
	if err != nil {
		return domain.AddedThread{}, err
	}
	return s.threadRepo.AddThread(ctx, ownerID, newThread)
}

// GetThreadDetail assembles a thread with its comments, each carrying the
// replies that belong to it. Replies for every comment are loaded with a
// single query and grouped here.
func (s *service) GetThreadDetail(ctx context.Context, threadID string) (domain.ThreadDetail, error) {
	thread, err := s.threadRepo.GetThreadByID(ctx, threadID)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	comments, err := s.commentRepo.GetCommentsByThreadID(ctx, threadID)
	if err != nil {
		logrus.Errorf("fetch comments of %s: %v", threadID, err)
		return domain.ThreadDetail{}, err
	}

	replyMap := map[string][]domain.ReplyDetail{}
	if len(comments) > 0 {
		commentIDs := make([]string, len(comments))
		for i, c := range comments {
			commentIDs[i] = c.ID
		}

		replies, err := s.replyRepo.GetRepliesByCommentIDs(ctx, commentIDs)
		if err != nil {
			logrus.Errorf("fetch replies of %s: %v", threadID, err)
			return domain.ThreadDetail{}, err
		}

		for _, r := range replies {
			detail, err := domain.ParseReplyDetail(r.Attributes())
			if err != nil {
				return domain.ThreadDetail{}, err
			}
			replyMap[r.CommentID] = append(replyMap[r.CommentID], detail)
		}
	}

	details := make([]domain.CommentDetail, 0, len(comments))
	for _, c := range comments {
		detail, err := domain.ParseCommentDetail(c.Attributes(replyMap[c.ID]))
		if err != nil {
			return domain.ThreadDetail{}, err
		}
		details = append(details, detail)
	}

	return domain.ParseThreadDetail(thread.Attributes(details))
}
