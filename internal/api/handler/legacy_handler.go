package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/newsportal/news-api/internal/api/middleware"
	"github.com/newsportal/news-api/internal/core/ports"
	"github.com/newsportal/news-api/internal/pkg/metrics"
)

// LegacyHandler serves /api/v1. Requests are unauthenticated, News and
// Comment bodies name their author, creates answer with the resource and
// updates answer 200 with the merged resource.
type LegacyHandler struct {
	users      ports.UserService
	news       ports.NewsService
	comments   ports.CommentService
	categories ports.CategoryService
}

func NewLegacyHandler(users ports.UserService, news ports.NewsService, comments ports.CommentService, categories ports.CategoryService) *LegacyHandler {
	return &LegacyHandler{users: users, news: news, comments: comments, categories: categories}
}

type legacyNewsRequest struct {
	AuthorID   int64  `json:"authorId"   validate:"required,gt=0"`
	CategoryID int64  `json:"categoryId" validate:"required,gt=0"`
	Content    string `json:"content"    validate:"required,notblank"`
}

type legacyCommentRequest struct {
	AuthorID int64  `json:"authorId" validate:"required,gt=0"`
	NewsID   int64  `json:"newsId"   validate:"required,gt=0"`
	Content  string `json:"content"  validate:"required,notblank"`
}

// --- users ---

func (h *LegacyHandler) CreateUser(c echo.Context) error {
	var req userRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	user, err := h.users.CreateNewAccount(c.Request().Context(), ports.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Roles:    req.Roles,
	})
	if err != nil {
		return err
	}
	metrics.EntitiesCreatedTotal.WithLabelValues("user").Inc()
	return created(c, "/api/v1/user", user.ID, toUserResponse(user))
}

func (h *LegacyHandler) UpdateUser(c echo.Context) error {
	id, err := middleware.PathID(c)
	if err != nil {
		return err
	}
	var req userUpdateRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	user, err := h.users.Update(c.Request().Context(), ports.UpdateUserInput{
		ID:       id,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Roles:    req.Roles,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// --- news ---

func (h *LegacyHandler) CreateNews(c echo.Context) error {
	var req legacyNewsRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	news, err := h.news.Create(c.Request().Context(), ports.CreateNewsInput{
		AuthorID:   req.AuthorID,
		CategoryID: req.CategoryID,
		Content:    req.Content,
	})
	if err != nil {
		return err
	}
	metrics.EntitiesCreatedTotal.WithLabelValues("news").Inc()
	return created(c, "/api/v1/news", news.ID, toNewsResponse(news))
}

func (h *LegacyHandler) UpdateNews(c echo.Context) error {
	id, err := middleware.PathID(c)
	if err != nil {
		return err
	}
	var req newsUpdateRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	news, err := h.news.Update(c.Request().Context(), ports.UpdateNewsInput{
		ID:         id,
		Content:    req.Content,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toNewsResponse(news))
}

// --- comments ---

func (h *LegacyHandler) CreateComment(c echo.Context) error {
	var req legacyCommentRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	comment, err := h.comments.Create(c.Request().Context(), ports.CreateCommentInput{
		AuthorID: req.AuthorID,
		NewsID:   req.NewsID,
		Content:  req.Content,
	})
	if err != nil {
		return err
	}
	metrics.EntitiesCreatedTotal.WithLabelValues("comment").Inc()
	return created(c, "/api/v1/comment", comment.ID, toCommentResponse(comment))
}

func (h *LegacyHandler) UpdateComment(c echo.Context) error {
	id, err := middleware.PathID(c)
	if err != nil {
		return err
	}
	var req commentUpdateRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	comment, err := h.comments.Update(c.Request().Context(), ports.UpdateCommentInput{
		ID:      id,
		Content: req.Content,
		NewsID:  req.NewsID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCommentResponse(comment))
}

// --- categories ---

func (h *LegacyHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	category, err := h.categories.Create(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	metrics.EntitiesCreatedTotal.WithLabelValues("news_category").Inc()
	return created(c, "/api/v1/news-category", category.ID, toCategoryResponse(category))
}

func (h *LegacyHandler) UpdateCategory(c echo.Context) error {
	id, err := middleware.PathID(c)
	if err != nil {
		return err
	}
	var req categoryUpdateRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	category, err := h.categories.Update(c.Request().Context(), ports.UpdateCategoryInput{ID: id, Name: req.Name})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoryResponse(category))
}
