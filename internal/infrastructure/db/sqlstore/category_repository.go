package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/newsportal/news-api/internal/core/domain"
	"github.com/newsportal/news-api/internal/core/ports"
)

// CategoryRepository implements ports.CategoryRepository.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*domain.NewsCategory, error) {
	var rec categoryRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, lookupErr(err, domain.EntityCategory, id)
	}
	c := rec.toDomain()
	return &c, nil
}

func (r *CategoryRepository) List(ctx context.Context, page ports.Page) ([]domain.NewsCategory, error) {
	var recs []categoryRecord
	if err := r.db.WithContext(ctx).Scopes(pageScope(page)).Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out := make([]domain.NewsCategory, len(recs))
	for i, rec := range recs {
		out[i] = rec.toDomain()
	}
	return out, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.NewsCategory) error {
	rec := categoryRecord{Name: c.Name}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	c.ID = rec.ID
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *domain.NewsCategory) error {
	if err := r.db.WithContext(ctx).Model(&categoryRecord{ID: c.ID}).Update("name", c.Name).Error; err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete refuses to remove a category that news still reference.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var inUse int64
		if err := tx.Model(&newsRecord{}).Where("category_id = ?", id).Count(&inUse).Error; err != nil {
			return fmt.Errorf("count category news: %w", err)
		}
		if inUse > 0 {
			return categoryInUse(id)
		}
		if err := tx.Delete(&categoryRecord{}, id).Error; err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return categoryInUse(id)
			}
			return fmt.Errorf("delete category: %w", err)
		}
		return nil
	})
}

func categoryInUse(id int64) error {
	return domain.Conflict("News category with id = '%d' is used by existing news", id)
}
