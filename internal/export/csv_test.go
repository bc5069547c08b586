package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gastos/internal/domain/expense"
)

func strPtr(s string) *string { return &s }

func TestWrite(t *testing.T) {
	list := []expense.Expense{
		{Descricao: "Café da manhã", Categoria: "Alimentação", Valor: 12.5, Data: strPtr("2026-02-08")},
		{Descricao: "", Categoria: "", Valor: 3, Data: nil},
	}

	var sb strings.Builder
	require.NoError(t, Write(&sb, list))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "data;descricao;categoria;valor", lines[0])
	assert.Equal(t, "2026-02-08;Café da manhã;Alimentação;12.50", lines[1])
	assert.Equal(t, ";;;3.00", lines[2])
}

func TestWriteEmptyCollection(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Write(&sb, nil))

	assert.Equal(t, "data;descricao;categoria;valor\n", sb.String())
}

func TestWriteQuotesFieldsWithSeparator(t *testing.T) {
	list := []expense.Expense{
		{Descricao: "antes;depois", Valor: 1},
	}

	var sb strings.Builder
	require.NoError(t, Write(&sb, list))

	assert.Contains(t, sb.String(), `"antes;depois"`)
}

func TestToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gastos_export.csv")
	list := []expense.Expense{{Descricao: "Pão", Valor: 7.25, Data: strPtr("2026-01-02")}}

	require.NoError(t, ToFile(path, list))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "data;descricao;categoria;valor\n"))
	assert.Contains(t, string(data), "2026-01-02;Pão;;7.25")
}

func TestDerivedFileNames(t *testing.T) {
	assert.Equal(t, "gastos_2026-02.csv", MonthFileName("2026-02"))
	assert.Equal(t, "gastos_2026-02-01_ate_2026-02-28.csv", RangeFileName("2026-02-01", "2026-02-28"))
}
