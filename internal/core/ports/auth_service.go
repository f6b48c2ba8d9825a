package ports

import (
	"context"
	"time"

	"github.com/newsportal/news-api/internal/core/domain"
)

// AuthService verifies credentials and issues bearer tokens. Verification
// failures are always domain.ErrUnauthenticated.
type AuthService interface {
	VerifyBasic(ctx context.Context, username, password string) (*domain.Principal, error)
	VerifyToken(ctx context.Context, token string) (*domain.Principal, error)
	IssueToken(ctx context.Context, principal domain.Principal) (string, time.Time, error)
}
