package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/newsportal/news-api/internal/core/domain"
	"github.com/newsportal/news-api/internal/core/ports"
)

// UserRepository implements ports.UserRepository.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var rec userRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, lookupErr(err, domain.EntityUser, id)
	}
	u := rec.toDomain()
	return &u, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var rec userRecord
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.UsernameNotFound(username)
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	u := rec.toDomain()
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context, page ports.Page) ([]domain.User, error) {
	var recs []userRecord
	if err := r.db.WithContext(ctx).Scopes(pageScope(page)).Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]domain.User, len(recs))
	for i, rec := range recs {
		out[i] = rec.toDomain()
	}
	return out, nil
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	rec := toUserRecord(u)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Conflict("User with username = '%s' already exists", u.Username)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	u.ID = rec.ID
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	err := r.db.WithContext(ctx).Model(&userRecord{ID: u.ID}).Updates(map[string]any{
		"username": u.Username,
		"email":    u.Email,
		"password": u.PasswordHash,
		"roles":    joinRoles(u.Roles),
	}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Conflict("User with username = '%s' already exists", u.Username)
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete removes, in order: comments on the user's news, the user's comments,
// the user's news and the user.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		authored := tx.Model(&newsRecord{}).Select("id").Where("author_id = ?", id)
		if err := tx.Where("news_id IN (?)", authored).Delete(&commentRecord{}).Error; err != nil {
			return fmt.Errorf("delete comments on user news: %w", err)
		}
		if err := tx.Where("author_id = ?", id).Delete(&commentRecord{}).Error; err != nil {
			return fmt.Errorf("delete user comments: %w", err)
		}
		if err := tx.Where("author_id = ?", id).Delete(&newsRecord{}).Error; err != nil {
			return fmt.Errorf("delete user news: %w", err)
		}
		if err := tx.Delete(&userRecord{}, id).Error; err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
}
