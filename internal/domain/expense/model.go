package expense

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar date format used everywhere: on disk, in
// filters and in the UI.
const DateLayout = "2006-01-02"

// NoDate is the placeholder shown for records without a date.
const NoDate = "sem data"

// Expense is one expense record. Data is nil for undated records and is
// persisted as JSON null. Records have no identifier of their own; they are
// addressed by position inside the owning user's collection, and positions
// shift when an earlier record is removed.
type Expense struct {
	Descricao string  `json:"descricao"`
	Categoria string  `json:"categoria"`
	Valor     float64 `json:"valor"`
	Data      *string `json:"data"`
}

// Field names one editable attribute of an Expense.
type Field string

const (
	FieldDescricao Field = "descricao"
	FieldCategoria Field = "categoria"
	FieldValor     Field = "valor"
	FieldData      Field = "data"
)

// New builds a validated Expense. The amount must be a positive finite
// number and the date, when present, a valid ISO calendar date.
func New(descricao, categoria string, valor float64, data *string) (Expense, error) {
	if !validAmount(valor) {
		return Expense{}, ErrInvalidAmount
	}
	if data != nil && !ValidDate(*data) {
		return Expense{}, ErrInvalidDate
	}
	return Expense{
		Descricao: descricao,
		Categoria: categoria,
		Valor:     valor,
		Data:      data,
	}, nil
}

// Edit replaces exactly one field. Empty input leaves Descricao and
// Categoria untouched, re-parses Valor as a positive amount and clears Data.
func (e *Expense) Edit(field Field, value string) error {
	value = strings.TrimSpace(value)

	switch field {
	case FieldDescricao:
		if value != "" {
			e.Descricao = value
		}
	case FieldCategoria:
		if value != "" {
			e.Categoria = value
		}
	case FieldValor:
		valor, err := ParseValor(value)
		if err != nil {
			return err
		}
		e.Valor = valor
	case FieldData:
		if value == "" {
			e.Data = nil
			return nil
		}
		if !ValidDate(value) {
			return ErrInvalidDate
		}
		e.Data = &value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	return nil
}

// DataOrPlaceholder returns the record date or the "sem data" placeholder.
func (e Expense) DataOrPlaceholder() string {
	if e.Data == nil || *e.Data == "" {
		return NoDate
	}
	return *e.Data
}

// Format renders the record for listings, 1-based ordinal first.
func (e Expense) Format(ordinal int) string {
	return fmt.Sprintf(
		"%d) Data: %s | Descrição: %s | Categoria: %s | Valor: R$ %.2f",
		ordinal, e.DataOrPlaceholder(), e.Descricao, e.Categoria, e.Valor,
	)
}

// ParseValor parses a user-typed amount. A decimal comma is accepted as a
// separator, and anything that is not strictly positive is rejected.
func ParseValor(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	valor, err := strconv.ParseFloat(s, 64)
	if err != nil || !validAmount(valor) {
		return 0, ErrInvalidAmount
	}
	return valor, nil
}

// ValidDate reports whether s is a parsable ISO calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

func validAmount(v float64) bool {
	return v > 0 && !math.IsInf(v, 1) && !math.IsNaN(v)
}
