package handler

import (
	"time"

	"github.com/newsportal/news-api/internal/core/domain"
)

// --- Request types ---

type userRequest struct {
	Username string        `json:"username" validate:"required,notblank,min=3,max=50"`
	Email    string        `json:"email"    validate:"required,notblank,min=3,max=256"`
	Password string        `json:"password" validate:"required,notblank,min=3,max=256"`
	Roles    []domain.Role `json:"roles"    validate:"required,min=1,dive,oneof=USER MODERATOR ADMIN"`
}

// userUpdateRequest is a partial update; absent fields stay untouched.
type userUpdateRequest struct {
	Username *string       `json:"username" validate:"omitempty,notblank,min=3,max=50"`
	Email    *string       `json:"email"    validate:"omitempty,notblank,min=3,max=256"`
	Password *string       `json:"password" validate:"omitempty,notblank,min=3,max=256"`
	Roles    []domain.Role `json:"roles"    validate:"omitempty,dive,oneof=USER MODERATOR ADMIN"`
}

type newsRequest struct {
	Content    string `json:"content"    validate:"required,notblank"`
	CategoryID int64  `json:"categoryId" validate:"required,gt=0"`
}

type newsUpdateRequest struct {
	Content    *string `json:"content"    validate:"omitempty,notblank"`
	CategoryID *int64  `json:"categoryId" validate:"omitempty,gt=0"`
}

type commentRequest struct {
	NewsID  int64  `json:"newsId"  validate:"required,gt=0"`
	Content string `json:"content" validate:"required,notblank"`
}

type commentUpdateRequest struct {
	NewsID  *int64  `json:"newsId"  validate:"omitempty,gt=0"`
	Content *string `json:"content" validate:"omitempty,notblank"`
}

type categoryRequest struct {
	Name string `json:"name" validate:"required,notblank,min=1,max=50"`
}

type categoryUpdateRequest struct {
	Name *string `json:"name" validate:"omitempty,notblank,min=1,max=50"`
}

// --- Response types ---

type userResponse struct {
	ID       int64         `json:"id"`
	Username string        `json:"username"`
	Email    string        `json:"email"`
	Roles    []domain.Role `json:"roles"`
	RegDate  time.Time     `json:"regDate"`
}

type userListResponse struct {
	Users []userResponse `json:"users"`
}

type newsResponse struct {
	ID           int64     `json:"id"`
	Content      string    `json:"content"`
	AuthorID     int64     `json:"authorId"`
	CategoryID   int64     `json:"categoryId"`
	CreationDate time.Time `json:"creationDate"`
	LastUpdate   time.Time `json:"lastUpdate"`
}

type newsSummaryResponse struct {
	newsResponse
	CommentsCount int64 `json:"commentsCount"`
}

type newsListResponse struct {
	News []newsSummaryResponse `json:"news"`
}

type newsDetailResponse struct {
	News     newsResponse        `json:"news"`
	Comments commentListResponse `json:"comments"`
}

type commentResponse struct {
	ID           int64     `json:"id"`
	Content      string    `json:"content"`
	AuthorID     int64     `json:"authorId"`
	NewsID       int64     `json:"newsId"`
	CreationDate time.Time `json:"creationDate"`
	LastUpdate   time.Time `json:"lastUpdate"`
}

type commentListResponse struct {
	Comments []commentResponse `json:"comments"`
}

type categoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type categoryListResponse struct {
	NewsCategories []categoryResponse `json:"newsCategories"`
}

type tokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type auditEventResponse struct {
	Entity     string    `json:"entity"`
	EntityID   int64     `json:"entityId"`
	Action     string    `json:"action"`
	ActorID    int64     `json:"actorId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

type auditListResponse struct {
	Events []auditEventResponse `json:"events"`
}

// errorResponse documents the error envelope for swagger.
type errorResponse struct {
	ErrorMessage string `json:"errorMessage"`
}
