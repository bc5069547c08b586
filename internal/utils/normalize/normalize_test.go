package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercase passthrough", in: "mercado", want: "mercado"},
		{name: "uppercase", in: "MERCADO", want: "mercado"},
		{name: "acute and circumflex", in: "Café da manhã", want: "cafe da manha"},
		{name: "cedilla", in: "Alimentação", want: "alimentacao"},
		{name: "tilde", in: "Não", want: "nao"},
		{name: "grave", in: "à vista", want: "a vista"},
		{name: "surrounding whitespace", in: "  Lazer  ", want: "lazer"},
		{name: "empty", in: "", want: ""},
		{name: "digits untouched", in: "Uber 99", want: "uber 99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fold(tt.in))
		})
	}
}

func TestFoldIsIdempotent(t *testing.T) {
	for _, s := range []string{"Café", "AÇAÍ", "pão de queijo"} {
		once := Fold(s)
		assert.Equal(t, once, Fold(once), s)
	}
}
