package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/newsportal/news-api/internal/api/middleware"
	"github.com/newsportal/news-api/internal/core/ports"
	"github.com/newsportal/news-api/internal/pkg/metrics"
)

// NewsHandler serves /api/v2/news.
type NewsHandler struct {
	news ports.NewsService
}

func NewNewsHandler(news ports.NewsService) *NewsHandler {
	return &NewsHandler{news: news}
}

// Filter pages over news ids, then narrows the page by category and author.
//
// @Summary      List news
// @Tags         news
// @Produce      json
// @Security     BasicAuth
// @Param        pageSize    query     int     true   "Page size (> 0)"
// @Param        pageNumber  query     int     true   "Zero-based page number"
// @Param        category    query     string  false  "Category name"
// @Param        author      query     string  false  "Author username"
// @Success      200         {object}  newsListResponse
// @Failure      400         {object}  errorResponse
// @Failure      401         {object}  errorResponse
// @Router       /api/v2/news/filter [get]
func (h *NewsHandler) Filter(c echo.Context) error {
	page, err := pageParams(c)
	if err != nil {
		return err
	}
	list, err := h.news.FilterBy(c.Request().Context(), ports.NewsFilter{
		Page:     page,
		Category: c.QueryParam("category"),
		Author:   c.QueryParam("author"),
	})
	if err != nil {
		return err
	}
	resp := newsListResponse{News: make([]newsSummaryResponse, len(list))}
	for i := range list {
		resp.News[i] = newsSummaryResponse{
			newsResponse:  toNewsResponse(&list[i].News),
			CommentsCount: list[i].CommentsCount,
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// Get returns one article with its comments.
//
// @Summary      Get news by id
// @Tags         news
// @Produce      json
// @Security     BasicAuth
// @Param        id   path      int  true  "News id"
// @Success      200  {object}  newsDetailResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v2/news/{id} [get]
func (h *NewsHandler) Get(c echo.Context) error {
	id, err := middleware.PathID(c)
	if err != nil {
		return err
	}
	detail, err := h.news.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newsDetailResponse{
		News:     toNewsResponse(&detail.News),
		Comments: toCommentList(detail.Comments),
	})
}

// Create publishes an article authored by the caller.
//
// @Summary      Create news
// @Tags         news
// @Accept       json
// @Security     BasicAuth
// @Param        Idempotency-Key  header  string       false  "Replays return the first article"
// @Param        body             body    newsRequest  true   "Article"
// @Success      201  "Location header points at the new article"
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v2/news [post]
func (h *NewsHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req newsRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	news, err := h.news.Create(c.Request().Context(), ports.CreateNewsInput{
		AuthorID:       p.ID,
		CategoryID:     req.CategoryID,
		Content:        req.Content,
		IdempotencyKey: c.Request().Header.Get(idempotencyHeader),
	})
	if err != nil {
		return err
	}
	metrics.EntitiesCreatedTotal.WithLabelValues("news").Inc()
	return created(c, "/api/v2/news", news.ID, nil)
}

// Update merges content and category into the article.
//
// @Summary      Update news
// @Tags         news
// @Accept       json
// @Security     BasicAuth
// @Param        id    path  int                true  "News id"
// @Param        body  body  newsUpdateRequest  true  "Fields to change"
// @Success      204
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v2/news/{id} [put]
func (h *NewsHandler) Update(c echo.Context) error {
	id, err := middleware.PathID(c)
	if err != nil {
		return err
	}
	var req newsUpdateRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if _, err := h.news.Update(c.Request().Context(), ports.UpdateNewsInput{
		ID:         id,
		Content:    req.Content,
		CategoryID: req.CategoryID,
	}); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes the article and its comments.
//
// @Summary      Delete news
// @Tags         news
// @Security     BasicAuth
// @Param        id  path  int  true  "News id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v2/news/{id} [delete]
func (h *NewsHandler) Delete(c echo.Context) error {
	id, err := middleware.PathID(c)
	if err != nil {
		return err
	}
	if err := h.news.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.EntitiesDeletedTotal.WithLabelValues("news").Inc()
	return c.NoContent(http.StatusNoContent)
}
