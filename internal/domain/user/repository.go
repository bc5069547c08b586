package user

import "context"

// Repository is the durable user directory. Create fails with ErrExists for
// a taken login; FindByLogin fails with ErrNotFound.
type Repository interface {
	Create(ctx context.Context, login, passwordHash string) error
	FindByLogin(ctx context.Context, login string) (User, error)
}
