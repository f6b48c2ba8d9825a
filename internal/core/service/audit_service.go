package service

import (
	"context"

	"github.com/newsportal/news-api/internal/core/domain"
	"github.com/newsportal/news-api/internal/core/ports"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

// AuditService reads the mutation trail. A nil repository (audit storage
// disabled) yields an empty history.
type AuditService struct {
	repo ports.AuditRepository
}

func NewAuditService(repo ports.AuditRepository) *AuditService {
	return &AuditService{repo: repo}
}

func (s *AuditService) History(ctx context.Context, q ports.AuditQuery) ([]domain.AuditEvent, error) {
	if s.repo == nil {
		return []domain.AuditEvent{}, nil
	}
	switch {
	case q.Limit <= 0:
		q.Limit = defaultAuditLimit
	case q.Limit > maxAuditLimit:
		q.Limit = maxAuditLimit
	}
	return s.repo.List(ctx, q)
}
