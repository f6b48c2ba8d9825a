package domain

import "time"

// AuditAction is the kind of mutation recorded in the audit trail.
type AuditAction string

const (
	AuditCreate AuditAction = "create"
	AuditUpdate AuditAction = "update"
	AuditDelete AuditAction = "delete"
)

// AuditEvent records one successful mutation. ActorID is zero for
// unauthenticated (legacy) requests.
type AuditEvent struct {
	Entity     string
	EntityID   int64
	Action     AuditAction
	ActorID    int64
	OccurredAt time.Time
}
