package domain

import "context"

// Principal is the authenticated caller of a request.
type Principal struct {
	ID       int64
	Username string
	Roles    []Role
}

// HasRole reports whether the principal was granted r.
func (p Principal) HasRole(r Role) bool {
	for _, have := range p.Roles {
		if have == r {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether the principal holds at least one of rs.
func (p Principal) HasAnyRole(rs ...Role) bool {
	for _, r := range rs {
		if p.HasRole(r) {
			return true
		}
	}
	return false
}

// IsElevated reports whether ownership checks are skipped for this caller.
// Only principals holding nothing beyond USER are subject to them.
func (p Principal) IsElevated() bool {
	return p.HasAnyRole(RoleModerator, RoleAdmin)
}

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the principal stored in ctx, if any.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
