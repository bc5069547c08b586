package expense

import (
	"context"
	"fmt"
	"log/slog"
)

// Service implements the collection operations behind the menus. The caller
// owns the in-memory collection for the session; every mutation here writes
// the whole collection back through the repository before returning.
type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "expense_service"),
	}
}

// Load reads the user's stored collection.
func (s *Service) Load(ctx context.Context, login string) ([]Expense, error) {
	list, err := s.repo.Load(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}
	return list, nil
}

// Save persists the collection as-is.
func (s *Service) Save(ctx context.Context, login string, list []Expense) error {
	if err := s.repo.Save(ctx, login, list); err != nil {
		return fmt.Errorf("save expenses: %w", err)
	}
	return nil
}

// Add appends a record and persists the grown collection.
func (s *Service) Add(ctx context.Context, login string, list []Expense, e Expense) ([]Expense, error) {
	list = append(list, e)
	if err := s.Save(ctx, login, list); err != nil {
		return nil, err
	}
	s.log.Debug("expense added", "login", login, "count", len(list))
	return list, nil
}

// EditField changes one field of the record at index and persists.
func (s *Service) EditField(ctx context.Context, login string, list []Expense, index int, field Field, value string) ([]Expense, error) {
	if index < 0 || index >= len(list) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	if err := list[index].Edit(field, value); err != nil {
		return nil, err
	}
	if err := s.Save(ctx, login, list); err != nil {
		return nil, err
	}
	s.log.Debug("expense edited", "login", login, "index", index, "field", string(field))
	return list, nil
}

// Remove deletes the record at index and persists. Positions after index
// shift down by one. The removed record is returned for display.
func (s *Service) Remove(ctx context.Context, login string, list []Expense, index int) ([]Expense, Expense, error) {
	if index < 0 || index >= len(list) {
		return nil, Expense{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	removed := list[index]
	list = append(list[:index], list[index+1:]...)
	if err := s.Save(ctx, login, list); err != nil {
		return nil, Expense{}, err
	}
	s.log.Debug("expense removed", "login", login, "index", index, "count", len(list))
	return list, removed, nil
}

// Clear persists an empty collection and returns it.
func (s *Service) Clear(ctx context.Context, login string) ([]Expense, error) {
	empty := make([]Expense, 0)
	if err := s.Save(ctx, login, empty); err != nil {
		return nil, err
	}
	s.log.Info("all expenses cleared", "login", login)
	return empty, nil
}
