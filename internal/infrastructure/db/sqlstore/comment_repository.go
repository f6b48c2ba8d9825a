package sqlstore

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/newsportal/news-api/internal/core/domain"
)

// CommentRepository implements ports.CommentRepository.
type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) FindByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var rec commentRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, lookupErr(err, domain.EntityComment, id)
	}
	c := rec.toDomain()
	return &c, nil
}

func (r *CommentRepository) ListByNews(ctx context.Context, newsID int64) ([]domain.Comment, error) {
	var recs []commentRecord
	if err := r.db.WithContext(ctx).Where("news_id = ?", newsID).Order("id ASC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	out := make([]domain.Comment, len(recs))
	for i, rec := range recs {
		out[i] = rec.toDomain()
	}
	return out, nil
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	rec := commentRecord{
		Content:      c.Content,
		AuthorID:     c.AuthorID,
		NewsID:       c.NewsID,
		CreationDate: c.CreationDate,
		LastUpdate:   c.LastUpdate,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	c.ID = rec.ID
	return nil
}

func (r *CommentRepository) Update(ctx context.Context, c *domain.Comment) error {
	err := r.db.WithContext(ctx).Model(&commentRecord{ID: c.ID}).Updates(map[string]any{
		"content":     c.Content,
		"news_id":     c.NewsID,
		"last_update": c.LastUpdate,
	}).Error
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&commentRecord{}, id).Error; err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
