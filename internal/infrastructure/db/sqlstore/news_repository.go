package sqlstore

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/newsportal/news-api/internal/core/domain"
	"github.com/newsportal/news-api/internal/core/ports"
)

// NewsRepository implements ports.NewsRepository.
type NewsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) FindByID(ctx context.Context, id int64) (*domain.News, error) {
	var rec newsRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, lookupErr(err, domain.EntityNews, id)
	}
	n := rec.toDomain()
	return &n, nil
}

// List resolves the page's id set over the unfiltered id ordering, then
// applies the author and category predicates to that set only.
func (r *NewsRepository) List(ctx context.Context, f ports.NewsFilter) ([]domain.NewsSummary, error) {
	var ids []int64
	if err := r.db.WithContext(ctx).Model(&newsRecord{}).Scopes(pageScope(f.Page)).Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("page news ids: %w", err)
	}
	if len(ids) == 0 {
		return []domain.NewsSummary{}, nil
	}

	var recs []newsRecord
	err := r.db.WithContext(ctx).Model(&newsRecord{}).
		Select(newsWithCommentsCount).
		Scopes(idsScope(ids), authorScope(f.Author), categoryScope(f.Category)).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}

	out := make([]domain.NewsSummary, len(recs))
	for i, rec := range recs {
		out[i] = domain.NewsSummary{News: rec.toDomain(), CommentsCount: rec.CommentsCount}
	}
	return out, nil
}

func (r *NewsRepository) Create(ctx context.Context, n *domain.News) error {
	rec := newsRecord{
		Content:      n.Content,
		AuthorID:     n.AuthorID,
		CategoryID:   n.CategoryID,
		CreationDate: n.CreationDate,
		LastUpdate:   n.LastUpdate,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("insert news: %w", err)
	}
	n.ID = rec.ID
	return nil
}

// Update writes the mutable columns. Author and creation date never change.
func (r *NewsRepository) Update(ctx context.Context, n *domain.News) error {
	err := r.db.WithContext(ctx).Model(&newsRecord{ID: n.ID}).Updates(map[string]any{
		"content":     n.Content,
		"category_id": n.CategoryID,
		"last_update": n.LastUpdate,
	}).Error
	if err != nil {
		return fmt.Errorf("update news: %w", err)
	}
	return nil
}

func (r *NewsRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("news_id = ?", id).Delete(&commentRecord{}).Error; err != nil {
			return fmt.Errorf("delete news comments: %w", err)
		}
		if err := tx.Delete(&newsRecord{}, id).Error; err != nil {
			return fmt.Errorf("delete news: %w", err)
		}
		return nil
	})
}
