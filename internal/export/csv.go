// Package export writes expense collections as semicolon-delimited files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"gastos/internal/domain/expense"
)

// Header is the fixed first row of every export.
var Header = []string{"data", "descricao", "categoria", "valor"}

// Write renders the collection to w: the fixed header, then one row per
// record with the amount at two decimal places. Missing dates and empty
// text fields become empty cells.
func Write(w io.Writer, list []expense.Expense) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, e := range list {
		data := ""
		if e.Data != nil {
			data = *e.Data
		}
		row := []string{data, e.Descricao, e.Categoria, fmt.Sprintf("%.2f", e.Valor)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ToFile writes the collection to path, creating or truncating it.
func ToFile(path string, list []expense.Expense) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := Write(f, list); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// MonthFileName derives the export name for a month filter.
func MonthFileName(month string) string {
	return fmt.Sprintf("gastos_%s.csv", month)
}

// RangeFileName derives the export name for a date-range filter.
func RangeFileName(start, end string) string {
	return fmt.Sprintf("gastos_%s_ate_%s.csv", start, end)
}
