package ports

import (
	"context"

	"github.com/newsportal/news-api/internal/core/domain"
)

// Repositories return domain.NotFound for missing rows and treat deleting a
// missing row as success.

// UserRepository persists accounts.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, page Page) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	// Delete removes the user, comments on the user's news, the user's own
	// comments and the user's news in one transaction.
	Delete(ctx context.Context, id int64) error
}

// NewsRepository persists news articles.
type NewsRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.News, error)
	// List pages over news ids first and applies Author/Category afterwards,
	// so a page may hold fewer than Page.Size rows.
	List(ctx context.Context, filter NewsFilter) ([]domain.NewsSummary, error)
	Create(ctx context.Context, news *domain.News) error
	Update(ctx context.Context, news *domain.News) error
	// Delete removes the article and its comments in one transaction.
	Delete(ctx context.Context, id int64) error
}

type CommentRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Comment, error)
	ListByNews(ctx context.Context, newsID int64) ([]domain.Comment, error)
	Create(ctx context.Context, comment *domain.Comment) error
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id int64) error
}

type CategoryRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.NewsCategory, error)
	List(ctx context.Context, page Page) ([]domain.NewsCategory, error)
	Create(ctx context.Context, category *domain.NewsCategory) error
	Update(ctx context.Context, category *domain.NewsCategory) error
	// Delete fails with domain.ErrConflict while news reference the category.
	Delete(ctx context.Context, id int64) error
}

// AuditRepository stores the append-only mutation trail.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
	List(ctx context.Context, query AuditQuery) ([]domain.AuditEvent, error)
}
