package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Servicer is the auth surface the CLI talks to.
type Servicer interface {
	Register(ctx context.Context, login, password string) error
	Authenticate(ctx context.Context, login, password string) (User, error)
	Exists(ctx context.Context, login string) bool
}

type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With("component", "user_service"),
	}
}

// Register validates the credentials, hashes the password with bcrypt and
// creates the account. ErrExists passes through for a taken login.
func (s *Service) Register(ctx context.Context, login, password string) error {
	if err := s.validator.ValidateRegister(login, password); err != nil {
		s.log.Debug("validation failed", "login", login, "error", err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.Create(ctx, login, string(hash)); err != nil {
		return err
	}

	s.log.Info("user registered", "login", login)
	return nil
}

// Authenticate checks the login and password against the stored hash.
func (s *Service) Authenticate(ctx context.Context, login, password string) (User, error) {
	if err := s.validator.ValidateLogin(login); err != nil {
		return User{}, ErrInvalidAuth
	}

	u, err := s.repo.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidAuth
	}

	return u, nil
}

// Exists reports whether a login is already registered.
func (s *Service) Exists(ctx context.Context, login string) bool {
	_, err := s.repo.FindByLogin(ctx, login)
	return err == nil
}
