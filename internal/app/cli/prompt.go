package cli

import (
	"fmt"
	"strconv"

	"gastos/internal/domain/expense"
)

// Input prompts re-ask until the answer is valid; the only way out without a
// valid answer is end of input.

func (u *UI) promptValor(msg string) (float64, error) {
	for {
		raw, err := u.ReadLine(msg)
		if err != nil {
			return 0, err
		}
		valor, err := expense.ParseValor(raw)
		if err != nil {
			u.Println("Digite um valor maior que zero. Ex: 12,50")
			continue
		}
		return valor, nil
	}
}

func (u *UI) promptOptionalDate() (*string, error) {
	for {
		raw, err := u.ReadLine("Data (YYYY-MM-DD) ou Enter para pular: ")
		if err != nil {
			return nil, err
		}
		if raw == "" {
			return nil, nil
		}
		if expense.ValidDate(raw) {
			return &raw, nil
		}
		u.Println("Formato inválido. Exemplo: 2026-02-08")
	}
}

func (u *UI) promptRequiredDate(msg string) (string, error) {
	for {
		raw, err := u.ReadLine(msg)
		if err != nil {
			return "", err
		}
		if expense.ValidDate(raw) {
			return raw, nil
		}
		u.Println("Formato inválido. Exemplo: 2026-02-08")
	}
}

// promptIndex asks for a 1-based record number and returns the 0-based
// index, or -1 when the user cancels with 0.
func (u *UI) promptIndex(total int) (int, error) {
	for {
		raw, err := u.ReadLine(fmt.Sprintf("\nDigite o número do gasto (1 a %d) ou 0 para cancelar: ", total))
		if err != nil {
			return 0, err
		}
		choice, convErr := strconv.Atoi(raw)
		if convErr != nil {
			u.Println("Digite um número inteiro válido.")
			continue
		}
		if choice == 0 {
			return -1, nil
		}
		if choice < 1 || choice > total {
			u.Println("Número fora do intervalo.")
			continue
		}
		return choice - 1, nil
	}
}
