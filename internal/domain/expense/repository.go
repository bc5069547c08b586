package expense

import "context"

// Repository persists one user's expense collection as a unit. Load returns
// an empty collection when nothing (or nothing readable) is stored.
type Repository interface {
	Load(ctx context.Context, login string) ([]Expense, error)
	Save(ctx context.Context, login string, list []Expense) error
}
