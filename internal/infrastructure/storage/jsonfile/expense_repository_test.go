package jsonfile

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gastos/internal/domain/expense"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

func TestExpenseRepositoryLoadAbsentFile(t *testing.T) {
	repo := NewExpenseRepository(t.TempDir(), testLogger())

	list, err := repo.Load(context.Background(), "maria")

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestExpenseRepositorySaveLoad(t *testing.T) {
	repo := NewExpenseRepository(t.TempDir(), testLogger())
	ctx := context.Background()

	list := []expense.Expense{
		{Descricao: "Café da manhã", Categoria: "Alimentação", Valor: 12.5, Data: strPtr("2026-02-08")},
		{Descricao: "Cinema", Categoria: "Lazer", Valor: 30, Data: nil},
	}

	require.NoError(t, repo.Save(ctx, "maria", list))

	got, err := repo.Load(ctx, "maria")
	require.NoError(t, err)
	assert.Equal(t, list, got)
}

func TestExpenseRepositoryRoundTripIsByteStable(t *testing.T) {
	repo := NewExpenseRepository(t.TempDir(), testLogger())
	ctx := context.Background()

	list := []expense.Expense{
		{Descricao: "Pão", Categoria: "", Valor: 7.25, Data: nil},
		{Descricao: "Uber", Categoria: "Transporte", Valor: 19.9, Data: strPtr("2026-03-01")},
	}
	require.NoError(t, repo.Save(ctx, "maria", list))

	first, err := os.ReadFile(repo.Path("maria"))
	require.NoError(t, err)

	loaded, err := repo.Load(ctx, "maria")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, "maria", loaded))

	second, err := os.ReadFile(repo.Path("maria"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExpenseRepositoryCorruptFileReadsEmpty(t *testing.T) {
	dir := t.TempDir()
	repo := NewExpenseRepository(dir, testLogger())
	ctx := context.Background()

	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "{{{"},
		{name: "a number instead of a list", content: "42"},
		{name: "an object instead of a list", content: `{"descricao":"x"}`},
		{name: "wrong element type", content: `[{"valor":"muito"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, os.WriteFile(repo.Path("maria"), []byte(tt.content), 0o644))

			list, err := repo.Load(ctx, "maria")

			require.NoError(t, err)
			assert.Empty(t, list)
		})
	}
}

func TestExpenseRepositorySaveNilPersistsEmptyList(t *testing.T) {
	repo := NewExpenseRepository(t.TempDir(), testLogger())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "maria", nil))

	data, err := os.ReadFile(repo.Path("maria"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestExpenseRepositoryStoresPerUserFiles(t *testing.T) {
	dir := t.TempDir()
	repo := NewExpenseRepository(dir, testLogger())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "maria", []expense.Expense{{Descricao: "a", Valor: 1}}))
	require.NoError(t, repo.Save(ctx, "jose", []expense.Expense{{Descricao: "b", Valor: 2}}))

	assert.Equal(t, filepath.Join(dir, "gastos_maria.json"), repo.Path("maria"))

	maria, err := repo.Load(ctx, "maria")
	require.NoError(t, err)
	jose, err := repo.Load(ctx, "jose")
	require.NoError(t, err)

	require.Len(t, maria, 1)
	require.Len(t, jose, 1)
	assert.NotEqual(t, maria[0].Descricao, jose[0].Descricao)
}

func TestExpenseRepositoryLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	repo := NewExpenseRepository(dir, testLogger())

	require.NoError(t, repo.Save(context.Background(), "maria", []expense.Expense{{Valor: 1}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "gastos_maria.json", entries[0].Name())
}
