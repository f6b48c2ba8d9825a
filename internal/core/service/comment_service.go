package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/newsportal/news-api/internal/core/domain"
	"github.com/newsportal/news-api/internal/core/ports"
)

// CommentService implements comment use cases.
type CommentService struct {
	base
	comments ports.CommentRepository
	news     ports.NewsRepository
	users    ports.UserRepository
}

func NewCommentService(
	comments ports.CommentRepository,
	news ports.NewsRepository,
	users ports.UserRepository,
	log zerolog.Logger,
	opts ...Option,
) *CommentService {
	return &CommentService{base: newBase(log, opts), comments: comments, news: news, users: users}
}

func (s *CommentService) FindByID(ctx context.Context, id int64) (*domain.Comment, error) {
	return s.comments.FindByID(ctx, id)
}

// FilterBy lists the comments of an existing article.
func (s *CommentService) FilterBy(ctx context.Context, filter ports.CommentFilter) ([]domain.Comment, error) {
	if _, err := s.news.FindByID(ctx, filter.NewsID); err != nil {
		return nil, err
	}
	return s.comments.ListByNews(ctx, filter.NewsID)
}

func (s *CommentService) OwnerOf(ctx context.Context, id int64) (int64, error) {
	c, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return c.AuthorID, nil
}

func (s *CommentService) Create(ctx context.Context, in ports.CreateCommentInput) (*domain.Comment, error) {
	scope := idempotencyScope("comment", in.AuthorID)
	if id, ok := s.replayed(ctx, scope, in.IdempotencyKey); ok {
		existing, err := s.comments.FindByID(ctx, id)
		if err == nil {
			s.log.Info().Str("idempotency_key", in.IdempotencyKey).Int64("comment_id", id).Msg("idempotent replay")
			return existing, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	if _, err := s.news.FindByID(ctx, in.NewsID); err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, in.AuthorID); err != nil {
		return nil, err
	}

	now := s.stamp()
	c := &domain.Comment{
		Content:      in.Content,
		AuthorID:     in.AuthorID,
		NewsID:       in.NewsID,
		CreationDate: now,
		LastUpdate:   now,
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.remember(ctx, scope, in.IdempotencyKey, c.ID)
	s.record(ctx, domain.EntityComment, c.ID, domain.AuditCreate)
	return c, nil
}

func (s *CommentService) Update(ctx context.Context, in ports.UpdateCommentInput) (*domain.Comment, error) {
	c, err := s.comments.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if in.NewsID != nil {
		if _, err := s.news.FindByID(ctx, *in.NewsID); err != nil {
			return nil, err
		}
	}

	domain.CommentPatch{Content: in.Content, NewsID: in.NewsID}.Apply(c, s.now())
	if err := s.comments.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}

	s.record(ctx, domain.EntityComment, c.ID, domain.AuditUpdate)
	return c, nil
}

func (s *CommentService) DeleteByID(ctx context.Context, id int64) error {
	if err := s.comments.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	s.record(ctx, domain.EntityComment, id, domain.AuditDelete)
	return nil
}
