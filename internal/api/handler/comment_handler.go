package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/newsportal/news-api/internal/api/middleware"
	"github.com/newsportal/news-api/internal/core/domain"
	"github.com/newsportal/news-api/internal/core/ports"
	"github.com/newsportal/news-api/internal/pkg/metrics"
)

// CommentHandler serves /api/v2/comment.
type CommentHandler struct {
	comments ports.CommentService
}

func NewCommentHandler(comments ports.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// commentFilter reads the mandatory newsId query parameter.
func commentFilter(c echo.Context) (ports.CommentFilter, error) {
	var f ports.CommentFilter
	if err := middleware.ParamError(echo.QueryParamsBinder(c).Int64("newsId", &f.NewsID).BindError()); err != nil {
		return f, err
	}
	if f.NewsID == 0 {
		return f, domain.Validation("News id must be specified")
	}
	return f, nil
}

// Filter lists the comments of one article.
//
// @Summary      List comments of a news article
// @Tags         comments
// @Produce      json
// @Security     BasicAuth
// @Param        newsId  query     int  true  "News id"
// @Success      200     {object}  commentListResponse
// @Failure      400     {object}  errorResponse
// @Failure      401     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /api/v2/comment/filter [get]
func (h *CommentHandler) Filter(c echo.Context) error {
	f, err := commentFilter(c)
	if err != nil {
		return err
	}
	list, err := h.comments.FilterBy(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCommentList(list))
}

// Get returns one comment.
//
// @Summary      Get a comment by id
// @Tags         comments
// @Produce      json
// @Security     BasicAuth
// @Param        id   path      int  true  "Comment id"
// @Success      200  {object}  commentResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v2/comment/{id} [get]
func (h *CommentHandler) Get(c echo.Context) error {
	id, err := middleware.PathID(c)
	if err != nil {
		return err
	}
	comment, err := h.comments.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCommentResponse(comment))
}

// Create posts a comment authored by the caller.
//
// @Summary      Create a comment
// @Tags         comments
// @Accept       json
// @Security     BasicAuth
// @Param        Idempotency-Key  header  string          false  "Replays return the first comment"
// @Param        body             body    commentRequest  true   "Comment"
// @Success      201  "Location header points at the new comment"
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v2/comment [post]
func (h *CommentHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req commentRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	comment, err := h.comments.Create(c.Request().Context(), ports.CreateCommentInput{
		AuthorID:       p.ID,
		NewsID:         req.NewsID,
		Content:        req.Content,
		IdempotencyKey: c.Request().Header.Get(idempotencyHeader),
	})
	if err != nil {
		return err
	}
	metrics.EntitiesCreatedTotal.WithLabelValues("comment").Inc()
	return created(c, "/api/v2/comment", comment.ID, nil)
}

// Update merges content and news id into the comment.
//
// @Summary      Update a comment
// @Tags         comments
// @Accept       json
// @Security     BasicAuth
// @Param        id    path  int                   true  "Comment id"
// @Param        body  body  commentUpdateRequest  true  "Fields to change"
// @Success      204
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v2/comment/{id} [put]
func (h *CommentHandler) Update(c echo.Context) error {
	id, err := middleware.PathID(c)
	if err != nil {
		return err
	}
	var req commentUpdateRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if _, err := h.comments.Update(c.Request().Context(), ports.UpdateCommentInput{
		ID:      id,
		Content: req.Content,
		NewsID:  req.NewsID,
	}); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes the comment.
//
// @Summary      Delete a comment
// @Tags         comments
// @Security     BasicAuth
// @Param        id  path  int  true  "Comment id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v2/comment/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	id, err := middleware.PathID(c)
	if err != nil {
		return err
	}
	if err := h.comments.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.EntitiesDeletedTotal.WithLabelValues("comment").Inc()
	return c.NoContent(http.StatusNoContent)
}
