package user

import (
	"fmt"
	"unicode"
)

const (
	MinLoginLen    = 3
	MaxLoginLen    = 32
	MinPasswordLen = 4
)

// Validator checks the identifier and password rules before any hashing or
// store access happens.
type Validator interface {
	ValidateRegister(login, password string) error
	ValidateLogin(login string) error
	ValidatePassword(password string) error
}

type CredentialsValidator struct{}

func NewValidator() *CredentialsValidator {
	return &CredentialsValidator{}
}

// ValidateRegister validates both halves of a registration request.
func (v *CredentialsValidator) ValidateRegister(login, password string) error {
	if err := v.ValidateLogin(login); err != nil {
		return fmt.Errorf("login validation failed: %w", err)
	}
	if err := v.ValidatePassword(password); err != nil {
		return fmt.Errorf("password validation failed: %w", err)
	}
	return nil
}

// ValidateLogin enforces the identifier shape: at least MinLoginLen runes,
// letters, digits, '_' and '-' only.
func (v *CredentialsValidator) ValidateLogin(login string) error {
	n := 0
	for _, r := range login {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' {
			return fmt.Errorf("login can only contain letters, digits, '_', '-'")
		}
		n++
	}
	if n < MinLoginLen {
		return fmt.Errorf("login must be at least %d characters", MinLoginLen)
	}
	if n > MaxLoginLen {
		return fmt.Errorf("login must be at most %d characters", MaxLoginLen)
	}
	return nil
}

// ValidatePassword enforces the minimum password length.
func (v *CredentialsValidator) ValidatePassword(password string) error {
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	}
	return nil
}
