package domain

import "time"

// Role is a granted authority.
type Role string

const (
	RoleUser      Role = "USER"
	RoleModerator Role = "MODERATOR"
	RoleAdmin     Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// UniqueRoles returns roles with duplicates removed, keeping first
// occurrences in order. Nil in, nil out.
func UniqueRoles(roles []Role) []Role {
	if roles == nil {
		return nil
	}
	out := make([]Role, 0, len(roles))
	seen := make(map[Role]bool, len(roles))
	for _, r := range roles {
		if seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}

// User models an account. PasswordHash never leaves the service boundary.
type User struct {
	ID               int64
	Username         string
	Email            string
	PasswordHash     string
	Roles            []Role
	RegistrationDate time.Time
}

// UserPatch lists the mergeable user fields; nil (or empty Roles) means
// "leave unchanged".
type UserPatch struct {
	Username     *string
	Email        *string
	PasswordHash *string
	Roles        []Role
}

// Apply copies the present fields onto u.
func (p UserPatch) Apply(u *User) {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
	if len(p.Roles) > 0 {
		u.Roles = append([]Role(nil), p.Roles...)
	}
}
