package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/newsportal/news-api/internal/core/domain"
)

// AuditRecorder abstracts the asynchronous audit trail (Mongo via the queue
// dispatcher). Record must not block the request.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}

// IdempotencyStore abstracts the Idempotency-Key store (Redis).
type IdempotencyStore interface {
	Lookup(ctx context.Context, scope, key string) (int64, bool, error)
	Remember(ctx context.Context, scope, key string, id int64) error
}

// Option customises a service's side channels.
type Option func(*base)

// WithAudit sends every successful mutation to rec.
func WithAudit(rec AuditRecorder) Option {
	return func(b *base) {
		if rec != nil {
			b.audit = rec
		}
	}
}

// WithIdempotency enables Idempotency-Key replay on create.
func WithIdempotency(store IdempotencyStore) Option {
	return func(b *base) {
		if store != nil {
			b.idempotency = store
		}
	}
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(b *base) {
		if now != nil {
			b.now = now
		}
	}
}

type nopAudit struct{}

func (nopAudit) Record(domain.AuditEvent) {}

type nopIdempotency struct{}

func (nopIdempotency) Lookup(context.Context, string, string) (int64, bool, error) {
	return 0, false, nil
}

func (nopIdempotency) Remember(context.Context, string, string, int64) error { return nil }

// base holds what every service shares: a logger and the best-effort side
// channels. Failures in those channels are logged, never returned.
type base struct {
	log         zerolog.Logger
	audit       AuditRecorder
	idempotency IdempotencyStore
	now         func() time.Time
}

func newBase(log zerolog.Logger, opts []Option) base {
	b := base{
		log:         log,
		audit:       nopAudit{},
		idempotency: nopIdempotency{},
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b *base) record(ctx context.Context, entity string, id int64, action domain.AuditAction) {
	var actor int64
	if p, ok := domain.PrincipalFrom(ctx); ok {
		actor = p.ID
	}
	b.audit.Record(domain.AuditEvent{
		Entity:     entity,
		EntityID:   id,
		Action:     action,
		ActorID:    actor,
		OccurredAt: b.now().UTC(),
	})
}

func idempotencyScope(entity string, authorID int64) string {
	return fmt.Sprintf("%s:%d", entity, authorID)
}

// replayed returns the id remembered for key, if any.
func (b *base) replayed(ctx context.Context, scope, key string) (int64, bool) {
	if key == "" {
		return 0, false
	}
	id, ok, err := b.idempotency.Lookup(ctx, scope, key)
	if err != nil {
		b.log.Warn().Err(err).Str("scope", scope).Msg("idempotency lookup failed, creating anyway")
		return 0, false
	}
	return id, ok
}

func (b *base) remember(ctx context.Context, scope, key string, id int64) {
	if key == "" {
		return
	}
	if err := b.idempotency.Remember(ctx, scope, key, id); err != nil {
		b.log.Warn().Err(err).Str("scope", scope).Int64("id", id).Msg("failed to store idempotency key")
	}
}

// stamp returns a creation timestamp truncated to storage precision.
func (b *base) stamp() time.Time {
	return b.now().UTC().Truncate(time.Microsecond)
}
