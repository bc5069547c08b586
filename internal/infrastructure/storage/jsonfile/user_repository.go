package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"gastos/internal/domain/user"
)

// UserRepository stores every account in one shared JSON mapping from login
// to {"senha_hash": …}.
type UserRepository struct {
	path string
	log  *slog.Logger
}

func NewUserRepository(path string, log *slog.Logger) *UserRepository {
	return &UserRepository{
		path: path,
		log:  log.With("component", "user_store"),
	}
}

// Create registers a new login. The whole mapping is re-read first so a
// duplicate is caught against the latest stored state.
func (r *UserRepository) Create(_ context.Context, login, passwordHash string) error {
	users := r.load()
	if _, ok := users[login]; ok {
		return user.ErrExists
	}
	users[login] = user.StoredUser{SenhaHash: passwordHash}

	if err := writeAtomic(r.path, users); err != nil {
		return fmt.Errorf("save user store: %w", err)
	}
	return nil
}

// FindByLogin looks the login up in the stored mapping.
func (r *UserRepository) FindByLogin(_ context.Context, login string) (user.User, error) {
	stored, ok := r.load()[login]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return user.User{Login: login, PasswordHash: stored.SenhaHash}, nil
}

// load reads the mapping, substituting an empty one when the file is absent
// or unreadable as a login→account object.
func (r *UserRepository) load() map[string]user.StoredUser {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.log.Warn("user store unreadable, starting empty", "path", r.path, "error", err)
		}
		return make(map[string]user.StoredUser)
	}

	var users map[string]user.StoredUser
	if err := json.Unmarshal(data, &users); err != nil {
		r.log.Warn("user store is corrupt, starting empty", "path", r.path, "error", err)
		return make(map[string]user.StoredUser)
	}
	if users == nil {
		users = make(map[string]user.StoredUser)
	}
	return users
}
