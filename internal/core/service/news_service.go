package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/newsportal/news-api/internal/core/domain"
	"github.com/newsportal/news-api/internal/core/ports"
)

// NewsService implements news article use cases.
type NewsService struct {
	base
	news       ports.NewsRepository
	comments   ports.CommentRepository
	categories ports.CategoryRepository
	users      ports.UserRepository
}

func NewNewsService(
	news ports.NewsRepository,
	comments ports.CommentRepository,
	categories ports.CategoryRepository,
	users ports.UserRepository,
	log zerolog.Logger,
	opts ...Option,
) *NewsService {
	return &NewsService{
		base:       newBase(log, opts),
		news:       news,
		comments:   comments,
		categories: categories,
		users:      users,
	}
}

// FindByID returns the article together with its comments.
func (s *NewsService) FindByID(ctx context.Context, id int64) (*domain.NewsDetail, error) {
	n, err := s.news.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.ListByNews(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}
	return &domain.NewsDetail{News: *n, Comments: comments}, nil
}

func (s *NewsService) FilterBy(ctx context.Context, filter ports.NewsFilter) ([]domain.NewsSummary, error) {
	return s.news.List(ctx, filter)
}

func (s *NewsService) OwnerOf(ctx context.Context, id int64) (int64, error) {
	n, err := s.news.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return n.AuthorID, nil
}

// Create stores a new article. A repeated IdempotencyKey from the same author
// returns the article created first.
func (s *NewsService) Create(ctx context.Context, in ports.CreateNewsInput) (*domain.News, error) {
	scope := idempotencyScope("news", in.AuthorID)
	if id, ok := s.replayed(ctx, scope, in.IdempotencyKey); ok {
		existing, err := s.news.FindByID(ctx, id)
		if err == nil {
			s.log.Info().Str("idempotency_key", in.IdempotencyKey).Int64("news_id", id).Msg("idempotent replay")
			return existing, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	if _, err := s.categories.FindByID(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, in.AuthorID); err != nil {
		return nil, err
	}

	now := s.stamp()
	n := &domain.News{
		Content:      in.Content,
		AuthorID:     in.AuthorID,
		CategoryID:   in.CategoryID,
		CreationDate: now,
		LastUpdate:   now,
	}
	if err := s.news.Create(ctx, n); err != nil {
		s.log.Error().Err(err).Msg("failed to create news")
		return nil, fmt.Errorf("create news: %w", err)
	}

	s.remember(ctx, scope, in.IdempotencyKey, n.ID)
	s.record(ctx, domain.EntityNews, n.ID, domain.AuditCreate)
	s.log.Info().Int64("news_id", n.ID).Int64("author_id", n.AuthorID).Msg("news created")
	return n, nil
}

// Update merges the present fields onto the stored article.
func (s *NewsService) Update(ctx context.Context, in ports.UpdateNewsInput) (*domain.News, error) {
	n, err := s.news.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if in.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
	}

	domain.NewsPatch{Content: in.Content, CategoryID: in.CategoryID}.Apply(n, s.now())
	if err := s.news.Update(ctx, n); err != nil {
		return nil, fmt.Errorf("update news: %w", err)
	}

	s.record(ctx, domain.EntityNews, n.ID, domain.AuditUpdate)
	return n, nil
}

// DeleteByID removes the article and its comments.
func (s *NewsService) DeleteByID(ctx context.Context, id int64) error {
	if err := s.news.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	s.record(ctx, domain.EntityNews, id, domain.AuditDelete)
	return nil
}
