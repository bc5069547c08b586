package expense

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		valor   float64
		data    *string
		wantErr error
	}{
		{name: "valid with date", valor: 12.5, data: strPtr("2026-02-08")},
		{name: "valid without date", valor: 1},
		{name: "zero amount", valor: 0, wantErr: ErrInvalidAmount},
		{name: "negative amount", valor: -3, wantErr: ErrInvalidAmount},
		{name: "bad date", valor: 10, data: strPtr("08/02/2026"), wantErr: ErrInvalidDate},
		{name: "nonsense date", valor: 10, data: strPtr("2026-13-40"), wantErr: ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New("Almoço", "Alimentação", tt.valor, tt.data)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Almoço", e.Descricao)
			assert.Equal(t, tt.valor, e.Valor)
			assert.Equal(t, tt.data, e.Data)
		})
	}
}

func TestFormatTwoDecimals(t *testing.T) {
	e, err := New("Café", "Alimentação", 12.5, strPtr("2026-02-08"))
	require.NoError(t, err)

	got := e.Format(1)
	assert.Equal(t, "1) Data: 2026-02-08 | Descrição: Café | Categoria: Alimentação | Valor: R$ 12.50", got)
}

func TestFormatWithoutDate(t *testing.T) {
	e, err := New("Pão", "", 3, nil)
	require.NoError(t, err)

	assert.Contains(t, e.Format(2), "Data: sem data")
	assert.Contains(t, e.Format(2), "Valor: R$ 3.00")
}

func TestEdit(t *testing.T) {
	base := func(t *testing.T) Expense {
		e, err := New("Mercado", "Casa", 50, strPtr("2026-01-10"))
		require.NoError(t, err)
		return e
	}

	t.Run("empty description keeps old value", func(t *testing.T) {
		e := base(t)
		require.NoError(t, e.Edit(FieldDescricao, "   "))
		assert.Equal(t, "Mercado", e.Descricao)
	})

	t.Run("description replaced", func(t *testing.T) {
		e := base(t)
		require.NoError(t, e.Edit(FieldDescricao, "Feira"))
		assert.Equal(t, "Feira", e.Descricao)
	})

	t.Run("empty category keeps old value", func(t *testing.T) {
		e := base(t)
		require.NoError(t, e.Edit(FieldCategoria, ""))
		assert.Equal(t, "Casa", e.Categoria)
	})

	t.Run("amount accepts decimal comma", func(t *testing.T) {
		e := base(t)
		require.NoError(t, e.Edit(FieldValor, "99,90"))
		assert.Equal(t, 99.90, e.Valor)
	})

	t.Run("amount rejects zero", func(t *testing.T) {
		e := base(t)
		assert.ErrorIs(t, e.Edit(FieldValor, "0"), ErrInvalidAmount)
		assert.Equal(t, 50.0, e.Valor)
	})

	t.Run("empty date clears", func(t *testing.T) {
		e := base(t)
		require.NoError(t, e.Edit(FieldData, ""))
		assert.Nil(t, e.Data)
	})

	t.Run("invalid date rejected", func(t *testing.T) {
		e := base(t)
		assert.ErrorIs(t, e.Edit(FieldData, "amanhã"), ErrInvalidDate)
		require.NotNil(t, e.Data)
		assert.Equal(t, "2026-01-10", *e.Data)
	})

	t.Run("unknown field", func(t *testing.T) {
		e := base(t)
		assert.ErrorIs(t, e.Edit(Field("moeda"), "BRL"), ErrUnknownField)
	})
}

func TestParseValor(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "12.50", want: 12.5},
		{in: "12,50", want: 12.5},
		{in: " 7 ", want: 7},
		{in: "0", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseValor(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2026-02-08"))
	assert.False(t, ValidDate("2026-02-30"))
	assert.False(t, ValidDate("08-02-2026"))
	assert.False(t, ValidDate(""))
}
