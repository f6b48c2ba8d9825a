package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/newsportal/news-api/internal/core/domain"
	"github.com/newsportal/news-api/internal/core/ports"
)

type CategoryService struct {
	base
	repo ports.CategoryRepository
}

func NewCategoryService(repo ports.CategoryRepository, log zerolog.Logger, opts ...Option) *CategoryService {
	return &CategoryService{base: newBase(log, opts), repo: repo}
}

func (s *CategoryService) FindByID(ctx context.Context, id int64) (*domain.NewsCategory, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) FilterBy(ctx context.Context, page ports.Page) ([]domain.NewsCategory, error) {
	return s.repo.List(ctx, page)
}

func (s *CategoryService) Create(ctx context.Context, name string) (*domain.NewsCategory, error) {
	c := &domain.NewsCategory{Name: name}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	s.record(ctx, domain.EntityCategory, c.ID, domain.AuditCreate)
	return c, nil
}

func (s *CategoryService) Update(ctx context.Context, in ports.UpdateCategoryInput) (*domain.NewsCategory, error) {
	c, err := s.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	domain.CategoryPatch{Name: in.Name}.Apply(c)
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	s.record(ctx, domain.EntityCategory, c.ID, domain.AuditUpdate)
	return c, nil
}

// DeleteByID fails with domain.ErrConflict while news still use the category.
func (s *CategoryService) DeleteByID(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	s.record(ctx, domain.EntityCategory, id, domain.AuditDelete)
	return nil
}
