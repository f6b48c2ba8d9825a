package sqlstore

import (
	"strings"
	"time"

	"github.com/newsportal/news-api/internal/core/domain"
)

type userRecord struct {
	ID               int64     `gorm:"primaryKey"`
	Username         string    `gorm:"size:50;not null;uniqueIndex"`
	Email            string    `gorm:"size:256;not null"`
	Password         string    `gorm:"size:256;not null"`
	Roles            string    `gorm:"size:64;not null"` // comma separated
	RegistrationDate time.Time `gorm:"not null"`
}

func (userRecord) TableName() string { return "users" }

type categoryRecord struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"size:50;not null"`
}

func (categoryRecord) TableName() string { return "news_categories" }

type newsRecord struct {
	ID           int64           `gorm:"primaryKey"`
	Content      string          `gorm:"type:text;not null"`
	AuthorID     int64           `gorm:"not null;index"`
	Author       *userRecord     `gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT"`
	CategoryID   int64           `gorm:"not null;index"`
	Category     *categoryRecord `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	CreationDate time.Time       `gorm:"not null"`
	LastUpdate   time.Time       `gorm:"not null"`

	// Filled only by List through a correlated subquery.
	CommentsCount int64 `gorm:"->;-:migration"`
}

func (newsRecord) TableName() string { return "news" }

type commentRecord struct {
	ID           int64       `gorm:"primaryKey"`
	Content      string      `gorm:"type:text;not null"`
	AuthorID     int64       `gorm:"not null;index"`
	Author       *userRecord `gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT"`
	NewsID       int64       `gorm:"not null;index"`
	News         *newsRecord `gorm:"foreignKey:NewsID;constraint:OnDelete:RESTRICT"`
	CreationDate time.Time   `gorm:"not null"`
	LastUpdate   time.Time   `gorm:"not null"`
}

func (commentRecord) TableName() string { return "comments" }

// --- record <-> domain ---

func joinRoles(roles []domain.Role) string {
	parts := make([]string, len(roles))
	for i, r := range roles {
		parts[i] = string(r)
	}
	return strings.Join(parts, ",")
}

func splitRoles(s string) []domain.Role {
	var roles []domain.Role
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			roles = append(roles, domain.Role(part))
		}
	}
	return roles
}

func toUserRecord(u *domain.User) userRecord {
	return userRecord{
		ID:               u.ID,
		Username:         u.Username,
		Email:            u.Email,
		Password:         u.PasswordHash,
		Roles:            joinRoles(u.Roles),
		RegistrationDate: u.RegistrationDate,
	}
}

func (r userRecord) toDomain() domain.User {
	return domain.User{
		ID:               r.ID,
		Username:         r.Username,
		Email:            r.Email,
		PasswordHash:     r.Password,
		Roles:            splitRoles(r.Roles),
		RegistrationDate: r.RegistrationDate.UTC(),
	}
}

func (r newsRecord) toDomain() domain.News {
	return domain.News{
		ID:           r.ID,
		Content:      r.Content,
		AuthorID:     r.AuthorID,
		CategoryID:   r.CategoryID,
		CreationDate: r.CreationDate.UTC(),
		LastUpdate:   r.LastUpdate.UTC(),
	}
}

func (r commentRecord) toDomain() domain.Comment {
	return domain.Comment{
		ID:           r.ID,
		Content:      r.Content,
		AuthorID:     r.AuthorID,
		NewsID:       r.NewsID,
		CreationDate: r.CreationDate.UTC(),
		LastUpdate:   r.LastUpdate.UTC(),
	}
}

func (r categoryRecord) toDomain() domain.NewsCategory {
	return domain.NewsCategory{ID: r.ID, Name: r.Name}
}
