package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/evergreenhands/nonprofit-backend/internal/auth"
)

// Service defines business logic for admin console accounts.
type Service interface {
	Login(ctx context.Context, email, password string) (*Admin, error)
	GetByID(ctx context.Context, id string) (*Admin, error)
	Bootstrap(ctx context.Context, email, password string) error
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher
}

func NewService(repo Repository, hasher auth.PasswordHasher) Service {
	return &service{
		repo:   repo,
		hasher: hasher,
	}
}

// Login verifies credentials and records the login time. A wrong email
// and a wrong password produce the same error so the endpoint does not
// leak which accounts exist.
func (s *service) Login(ctx context.Context, email, password string) (*Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	a, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.hasher.Compare(a.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !a.IsActive {
		return nil, ErrInactiveAccount
	}

	if err := s.repo.UpdateLastLogin(ctx, a.ID, time.Now().UTC()); err != nil {
		// Login still succeeds; the timestamp is informational.
		log.Printf("failed to update last login for admin %s: %v", a.ID, err)
	}

	return a, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Admin, error) {
	return s.repo.GetByID(ctx, id)
}

// Bootstrap provisions the initial console account from configuration at
// startup. With no credentials configured it is a no-op; when the account
// already exists the configured credentials are left untouched so a
// rotated password in the database is never silently reverted.
func (s *service) Bootstrap(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash bootstrap admin password failed: %w", err)
	}

	err = s.repo.Create(ctx, &Admin{
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	})
	if errors.Is(err, ErrEmailAlreadyUsed) {
		return nil
	}
	if err != nil {
		return err
	}

	log.Printf("bootstrapped admin account %s", email)
	return nil
}
