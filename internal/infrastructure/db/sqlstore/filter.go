package sqlstore

import (
	"gorm.io/gorm"

	"github.com/newsportal/news-api/internal/core/ports"
)

// Query scopes. Each returns the query unchanged when its predicate is unset.

func pageScope(p ports.Page) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC").Offset(p.Offset()).Limit(p.Size)
	}
}

func authorScope(username string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if username == "" {
			return db
		}
		return db.Joins("JOIN users ON users.id = news.author_id").
			Where("users.username = ?", username)
	}
}

func categoryScope(name string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if name == "" {
			return db
		}
		return db.Joins("JOIN news_categories ON news_categories.id = news.category_id").
			Where("news_categories.name = ?", name)
	}
}

func idsScope(ids []int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("news.id IN ?", ids).Order("news.id ASC")
	}
}

const newsWithCommentsCount = "news.*, (SELECT COUNT(*) FROM comments WHERE comments.news_id = news.id) AS comments_count"
