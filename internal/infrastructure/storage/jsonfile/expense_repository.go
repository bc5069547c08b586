package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gastos/internal/domain/expense"
)

// ExpenseRepository stores each user's collection in gastos_<login>.json
// under the configured data directory.
type ExpenseRepository struct {
	dir string
	log *slog.Logger
}

func NewExpenseRepository(dir string, log *slog.Logger) *ExpenseRepository {
	return &ExpenseRepository{
		dir: dir,
		log: log.With("component", "expense_store"),
	}
}

// Path returns the store file for a login. Logins are validated to letters,
// digits, '_' and '-', so the name is filesystem-safe.
func (r *ExpenseRepository) Path(login string) string {
	return filepath.Join(r.dir, fmt.Sprintf("gastos_%s.json", login))
}

// Load reads the user's collection. An absent file is an empty collection;
// a file that cannot be parsed as a record list is treated the same way
// after a warning, and its content is lost on the next save.
func (r *ExpenseRepository) Load(_ context.Context, login string) ([]expense.Expense, error) {
	path := r.Path(login)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make([]expense.Expense, 0), nil
		}
		return nil, fmt.Errorf("read expense store: %w", err)
	}

	var list []expense.Expense
	if err := json.Unmarshal(data, &list); err != nil {
		r.log.Warn("expense store is corrupt, starting empty", "path", path, "error", err)
		return make([]expense.Expense, 0), nil
	}
	if list == nil {
		// The file held JSON null.
		list = make([]expense.Expense, 0)
	}
	return list, nil
}

// Save overwrites the user's store with the whole collection.
func (r *ExpenseRepository) Save(_ context.Context, login string, list []expense.Expense) error {
	if list == nil {
		list = make([]expense.Expense, 0)
	}
	if err := writeAtomic(r.Path(login), list); err != nil {
		return fmt.Errorf("save expense store: %w", err)
	}
	return nil
}
