package handler

import "github.com/newsportal/news-api/internal/core/domain"

func toUserResponse(u *domain.User) userResponse {
	roles := u.Roles
	if roles == nil {
		roles = []domain.Role{}
	}
	return userResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Roles:    roles,
		RegDate:  u.RegistrationDate,
	}
}

func toNewsResponse(n *domain.News) newsResponse {
	return newsResponse{
		ID:           n.ID,
		Content:      n.Content,
		AuthorID:     n.AuthorID,
		CategoryID:   n.CategoryID,
		CreationDate: n.CreationDate,
		LastUpdate:   n.LastUpdate,
	}
}

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:           c.ID,
		Content:      c.Content,
		AuthorID:     c.AuthorID,
		NewsID:       c.NewsID,
		CreationDate: c.CreationDate,
		LastUpdate:   c.LastUpdate,
	}
}

func toCommentList(comments []domain.Comment) commentListResponse {
	out := commentListResponse{Comments: make([]commentResponse, len(comments))}
	for i := range comments {
		out.Comments[i] = toCommentResponse(&comments[i])
	}
	return out
}

func toCategoryResponse(c *domain.NewsCategory) categoryResponse {
	return categoryResponse{ID: c.ID, Name: c.Name}
}

func toAuditEventResponse(e domain.AuditEvent) auditEventResponse {
	return auditEventResponse{
		Entity:     e.Entity,
		EntityID:   e.EntityID,
		Action:     string(e.Action),
		ActorID:    e.ActorID,
		OccurredAt: e.OccurredAt,
	}
}
