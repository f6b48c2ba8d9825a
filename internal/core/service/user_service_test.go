package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/newsportal/news-api/internal/core/domain"
	"github.com/newsportal/news-api/internal/core/ports"
)

func TestUserService_CreateNewAccount_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	audit := &recordingAudit{}
	svc := NewUserService(repo, zerolog.Nop(), WithAudit(audit))

	u, err := svc.CreateNewAccount(context.Background(), ports.CreateUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pass123",
		Roles:    []domain.Role{domain.RoleUser},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if !checkPassword(u.PasswordHash, "pass123") {
		t.Fatalf("stored hash does not match password")
	}
	if u.RegistrationDate.IsZero() {
		t.Fatalf("expected registration date")
	}
	if len(audit.events) != 1 {
		t.Fatalf("expected audit event")
	}
}

func TestUserService_CreateNewAccount_DuplicateUsername(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed(domain.User{Username: "bob"})
	svc := NewUserService(repo, zerolog.Nop())

	_, err := svc.CreateNewAccount(context.Background(), ports.CreateUserInput{Username: "bob", Password: "pass"})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestUserService_CreateNewAccount_LookupFailure(t *testing.T) {
	repo := newStubUserRepo()
	repo.err = errBoom
	svc := NewUserService(repo, zerolog.Nop())

	_, err := svc.CreateNewAccount(context.Background(), ports.CreateUserInput{Username: "bob", Password: "pass"})
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}

func TestUserService_Update_RehashesAndKeepsOtherFields(t *testing.T) {
	repo := newStubUserRepo()
	stored := repo.seed(domain.User{Username: "carol", Email: "c@example.com", PasswordHash: "old", Roles: []domain.Role{domain.RoleUser}})
	svc := NewUserService(repo, zerolog.Nop())

	pw := "newpass"
	got, err := svc.Update(context.Background(), ports.UpdateUserInput{ID: stored.ID, Password: &pw})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Username != "carol" || got.Email != "c@example.com" || len(got.Roles) != 1 {
		t.Fatalf("unexpected merge: %+v", got)
	}
	if !checkPassword(got.PasswordHash, "newpass") {
		t.Fatalf("expected new password hash")
	}
}

func TestUserService_Update_UsernameTaken(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed(domain.User{Username: "dave"})
	erin := repo.seed(domain.User{Username: "erin"})
	svc := NewUserService(repo, zerolog.Nop())

	name := "dave"
	if _, err := svc.Update(context.Background(), ports.UpdateUserInput{ID: erin.ID, Username: &name}); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestUserService_FindByUsername_DistinctMessage(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	_, err := svc.FindByUsername(context.Background(), "ghost")
	if err == nil || err.Error() != "User with username = 'ghost' not found" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUserService_RolesAreASet(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	u, err := svc.CreateNewAccount(context.Background(), ports.CreateUserInput{
		Username: "frank",
		Password: "pass",
		Roles:    []domain.Role{domain.RoleUser, domain.RoleUser, domain.RoleAdmin, domain.RoleUser},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if diff := cmp.Diff([]domain.Role{domain.RoleUser, domain.RoleAdmin}, u.Roles); diff != "" {
		t.Fatalf("created roles mismatch (-want +got):\n%s", diff)
	}

	got, err := svc.Update(context.Background(), ports.UpdateUserInput{
		ID:    u.ID,
		Roles: []domain.Role{domain.RoleModerator, domain.RoleModerator},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if diff := cmp.Diff([]domain.Role{domain.RoleModerator}, got.Roles); diff != "" {
		t.Fatalf("updated roles mismatch (-want +got):\n%s", diff)
	}
}

