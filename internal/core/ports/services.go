package ports

import (
	"context"

	"github.com/newsportal/news-api/internal/core/domain"
)

// CreateUserInput carries a sign-up request. Password is plaintext.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Roles    []domain.Role
}

// UpdateUserInput carries a partial update; nil fields stay untouched.
type UpdateUserInput struct {
	ID       int64
	Username *string
	Email    *string
	Password *string
	Roles    []domain.Role
}

type CreateNewsInput struct {
	AuthorID   int64
	CategoryID int64
	Content    string
	// IdempotencyKey, when set, makes repeated creates by the same author
	// return the first article instead of inserting again.
	IdempotencyKey string
}

type UpdateNewsInput struct {
	ID         int64
	Content    *string
	CategoryID *int64
}

type CreateCommentInput struct {
	AuthorID       int64
	NewsID         int64
	Content        string
	IdempotencyKey string
}

type UpdateCommentInput struct {
	ID      int64
	Content *string
	NewsID  *int64
}

type UpdateCategoryInput struct {
	ID   int64
	Name *string
}

// UserService manages accounts.
type UserService interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FilterBy(ctx context.Context, page Page) ([]domain.User, error)
	CreateNewAccount(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, input UpdateUserInput) (*domain.User, error)
	DeleteByID(ctx context.Context, id int64) error
}

// NewsService manages news articles.
type NewsService interface {
	FindByID(ctx context.Context, id int64) (*domain.NewsDetail, error)
	FilterBy(ctx context.Context, filter NewsFilter) ([]domain.NewsSummary, error)
	Create(ctx context.Context, input CreateNewsInput) (*domain.News, error)
	Update(ctx context.Context, input UpdateNewsInput) (*domain.News, error)
	DeleteByID(ctx context.Context, id int64) error
	// OwnerOf returns the author id of the article.
	OwnerOf(ctx context.Context, id int64) (int64, error)
}

// CommentService manages comments.
type CommentService interface {
	FindByID(ctx context.Context, id int64) (*domain.Comment, error)
	FilterBy(ctx context.Context, filter CommentFilter) ([]domain.Comment, error)
	Create(ctx context.Context, input CreateCommentInput) (*domain.Comment, error)
	Update(ctx context.Context, input UpdateCommentInput) (*domain.Comment, error)
	DeleteByID(ctx context.Context, id int64) error
	OwnerOf(ctx context.Context, id int64) (int64, error)
}

// CategoryService manages the news taxonomy.
type CategoryService interface {
	FindByID(ctx context.Context, id int64) (*domain.NewsCategory, error)
	FilterBy(ctx context.Context, page Page) ([]domain.NewsCategory, error)
	Create(ctx context.Context, name string) (*domain.NewsCategory, error)
	Update(ctx context.Context, input UpdateCategoryInput) (*domain.NewsCategory, error)
	DeleteByID(ctx context.Context, id int64) error
}

// AuditService exposes the mutation trail.
type AuditService interface {
	History(ctx context.Context, query AuditQuery) ([]domain.AuditEvent, error)
}
