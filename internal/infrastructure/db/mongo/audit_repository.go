package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/newsportal/news-api/internal/core/domain"
	"github.com/newsportal/news-api/internal/core/ports"
)

const auditCollection = "audit_events"

var _ ports.AuditRepository = (*AuditRepository)(nil)

// AuditRepository implements ports.AuditRepository. Documents are append-only.
type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(auditCollection)}
}

type auditDocument struct {
	Entity     string    `bson:"entity"`
	EntityID   int64     `bson:"entity_id"`
	Action     string    `bson:"action"`
	ActorID    int64     `bson:"actor_id,omitempty"`
	OccurredAt time.Time `bson:"occurred_at"`
	RecordedAt time.Time `bson:"recorded_at"`
}

func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := auditDocument{
		Entity:     event.Entity,
		EntityID:   event.EntityID,
		Action:     string(event.Action),
		ActorID:    event.ActorID,
		OccurredAt: event.OccurredAt.UTC(),
		RecordedAt: time.Now().UTC(),
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// List returns the newest events first.
func (r *AuditRepository) List(ctx context.Context, q ports.AuditQuery) ([]domain.AuditEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if q.Entity != "" {
		filter["entity"] = q.Entity
	}
	if q.EntityID != 0 {
		filter["entity_id"] = q.EntityID
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "occurred_at", Value: -1}}).
		SetLimit(int64(q.Limit))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find audit events: %w", err)
	}
	var docs []auditDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode audit events: %w", err)
	}

	out := make([]domain.AuditEvent, len(docs))
	for i, d := range docs {
		out[i] = domain.AuditEvent{
			Entity:     d.Entity,
			EntityID:   d.EntityID,
			Action:     domain.AuditAction(d.Action),
			ActorID:    d.ActorID,
			OccurredAt: d.OccurredAt.UTC(),
		}
	}
	return out, nil
}

// EnsureIndexes creates the lookup index used by List.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "entity", Value: 1},
			{Key: "entity_id", Value: 1},
			{Key: "occurred_at", Value: -1},
		},
	})
	return err
}
