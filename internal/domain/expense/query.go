package expense

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"gastos/internal/utils/normalize"
)

// SortKey selects the field a listing is ordered by.
type SortKey string

const (
	SortByData      SortKey = "data"
	SortByValor     SortKey = "valor"
	SortByCategoria SortKey = "categoria"
	SortByDescricao SortKey = "descricao"
)

// ParseSortKey validates a user-typed sort key.
func ParseSortKey(s string) (SortKey, error) {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))
	switch key {
	case SortByData, SortByValor, SortByCategoria, SortByDescricao:
		return key, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
}

// FilterByMonth keeps records whose date starts with the given "YYYY-MM"
// key. Undated records never match.
func FilterByMonth(list []Expense, month string) []Expense {
	out := make([]Expense, 0)
	for _, e := range list {
		if e.Data != nil && len(*e.Data) >= 7 && (*e.Data)[:7] == month {
			out = append(out, e)
		}
	}
	return out
}

// FilterByRange keeps records dated inside [start, end], both bounds
// inclusive. Records without a parsable date are excluded.
func FilterByRange(list []Expense, start, end string) ([]Expense, error) {
	from, err := time.Parse(DateLayout, start)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, start)
	}
	to, err := time.Parse(DateLayout, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, end)
	}

	out := make([]Expense, 0)
	for _, e := range list {
		if e.Data == nil {
			continue
		}
		d, err := time.Parse(DateLayout, *e.Data)
		if err != nil {
			continue
		}
		if !d.Before(from) && !d.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

// Search selects records by a folded substring match on the description
// and/or a folded exact match on the category. Both conditions must hold
// when both arguments are set; with neither set every record matches.
func Search(list []Expense, term, categoria string) []Expense {
	termFolded := normalize.Fold(term)
	catFolded := normalize.Fold(categoria)

	out := make([]Expense, 0)
	for _, e := range list {
		if termFolded != "" && !strings.Contains(normalize.Fold(e.Descricao), termFolded) {
			continue
		}
		if catFolded != "" && normalize.Fold(e.Categoria) != catFolded {
			continue
		}
		out = append(out, e)
	}
	return out
}

// maxDateKey orders above every valid ISO date, so undated records land at
// the maximal end of a sort by date.
const maxDateKey = "9999-99-99"

// Sort returns a new slice ordered by the given key. The sort is stable,
// amounts compare numerically, text fields compare folded, and records with
// a missing or unparsable date take the maximal position.
func Sort(list []Expense, key SortKey, descending bool) ([]Expense, error) {
	var less func(a, b Expense) bool

	switch key {
	case SortByValor:
		less = func(a, b Expense) bool { return a.Valor < b.Valor }
	case SortByData:
		less = func(a, b Expense) bool { return dateKey(a) < dateKey(b) }
	case SortByCategoria:
		less = func(a, b Expense) bool {
			return normalize.Fold(a.Categoria) < normalize.Fold(b.Categoria)
		}
	case SortByDescricao:
		less = func(a, b Expense) bool {
			return normalize.Fold(a.Descricao) < normalize.Fold(b.Descricao)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSortKey, key)
	}

	out := make([]Expense, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out, nil
}

func dateKey(e Expense) string {
	if e.Data == nil || !ValidDate(*e.Data) {
		return maxDateKey
	}
	return *e.Data
}
