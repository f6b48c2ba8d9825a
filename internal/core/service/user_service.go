package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/newsportal/news-api/internal/core/domain"
	"github.com/newsportal/news-api/internal/core/ports"
)

// UserService implements account management.
type UserService struct {
	base
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger, opts ...Option) *UserService {
	return &UserService{base: newBase(log, opts), repo: repo}
}

func (s *UserService) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *UserService) FilterBy(ctx context.Context, page ports.Page) ([]domain.User, error) {
	return s.repo.List(ctx, page)
}

// CreateNewAccount hashes the plaintext password and stores the account.
func (s *UserService) CreateNewAccount(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if err := s.ensureUsernameFree(ctx, in.Username); err != nil {
		return nil, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:         in.Username,
		Email:            in.Email,
		PasswordHash:     hash,
		Roles:            domain.UniqueRoles(in.Roles),
		RegistrationDate: s.stamp(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.record(ctx, domain.EntityUser, user.ID, domain.AuditCreate)
	s.log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("account created")
	return user, nil
}

// Update merges the present fields onto the stored account. A new password is
// re-hashed before it is stored.
func (s *UserService) Update(ctx context.Context, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Username != nil && *in.Username != user.Username {
		if err := s.ensureUsernameFree(ctx, *in.Username); err != nil {
			return nil, err
		}
	}

	patch := domain.UserPatch{Username: in.Username, Email: in.Email, Roles: domain.UniqueRoles(in.Roles)}
	if in.Password != nil {
		hash, err := hashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}
	patch.Apply(user)

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.record(ctx, domain.EntityUser, user.ID, domain.AuditUpdate)
	return user, nil
}

// DeleteByID removes the account together with its news and comments.
func (s *UserService) DeleteByID(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	s.record(ctx, domain.EntityUser, id, domain.AuditDelete)
	return nil
}

func (s *UserService) ensureUsernameFree(ctx context.Context, username string) error {
	_, err := s.repo.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return domain.Conflict("User with username = '%s' already exists", username)
	case errors.Is(err, domain.ErrNotFound):
		return nil
	default:
		return fmt.Errorf("lookup username: %w", err)
	}
}

