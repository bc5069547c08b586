// Package cli implements the interactive menu application: an
// authentication menu that yields a session user, then the main menu over
// that user's expense collection.
package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"gastos/internal/config"
	"gastos/internal/domain/expense"
	"gastos/internal/domain/user"
)

const appTitle = "GERENCIADOR DE GASTOS (CLI)  💸"

// App wires the services to the terminal.
type App struct {
	cfg      *config.Config
	log      *slog.Logger
	users    user.Servicer
	userVal  user.Validator
	expenses *expense.Service
	ui       *UI
}

// session is the state of one logged-in user: the login plus the collection,
// loaded wholesale at login and written back on every mutation.
type session struct {
	login string
	list  []expense.Expense
}

func New(cfg *config.Config, log *slog.Logger, users user.Servicer, userVal user.Validator, expenses *expense.Service, in io.Reader, out io.Writer) *App {
	return &App{
		cfg:      cfg,
		log:      log.With("component", "cli"),
		users:    users,
		userVal:  userVal,
		expenses: expenses,
		ui:       NewUI(in, out),
	}
}

// Run drives the whole program: authenticate, load the collection, loop the
// main menu. End of input is treated like quitting and still saves.
func (a *App) Run(ctx context.Context) error {
	login, err := a.authMenu(ctx)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if login == "" {
		return nil
	}

	list, err := a.expenses.Load(ctx, login)
	if err != nil {
		return err
	}
	sess := &session{login: login, list: list}

	if err := a.mainMenu(ctx, sess); err != nil {
		if errors.Is(err, io.EOF) {
			return a.expenses.Save(ctx, sess.login, sess.list)
		}
		return err
	}
	return nil
}

// authMenu loops until a user is logged in or chooses to leave. An empty
// login with a nil error means the user picked "sair".
func (a *App) authMenu(ctx context.Context) (string, error) {
	for {
		a.ui.Clear()
		a.ui.Banner(appTitle)
		a.ui.Println("\n1 - Entrar")
		a.ui.Println("2 - Cadastrar")
		a.ui.Println("0 - Sair")

		op, err := a.ui.ReadLine("\n> ")
		if err != nil {
			return "", err
		}

		switch op {
		case "1":
			login, err := a.loginFlow(ctx)
			if err != nil {
				return "", err
			}
			if login != "" {
				return login, nil
			}
		case "2":
			login, err := a.registerFlow(ctx)
			if err != nil {
				return "", err
			}
			if login != "" {
				return login, nil
			}
		case "0":
			a.ui.Println("\nEncerrando...")
			return "", nil
		default:
			a.ui.Println("\nOpção inválida.")
			a.ui.Pause()
		}
	}
}

// loginFlow runs one login attempt. Unknown user and wrong password are
// reported and send the user back to the auth menu.
func (a *App) loginFlow(ctx context.Context) (string, error) {
	a.ui.Clear()
	a.ui.Println("=== ENTRAR ===")
	a.ui.Println()

	login, err := a.ui.ReadLine("Usuário: ")
	if err != nil {
		return "", err
	}
	password, err := a.ui.ReadPassword("Senha: ")
	if err != nil {
		return "", err
	}

	_, authErr := a.users.Authenticate(ctx, login, password)
	switch {
	case errors.Is(authErr, user.ErrNotFound):
		a.ui.Println("\nUsuário não encontrado.")
		a.ui.Pause()
		return "", nil
	case errors.Is(authErr, user.ErrInvalidAuth):
		a.ui.Println("\nSenha incorreta.")
		a.ui.Pause()
		return "", nil
	case authErr != nil:
		return "", authErr
	}

	a.ui.Successf("\n✅ Login realizado!")
	a.ui.Pause()
	return login, nil
}

// registerFlow collects a fresh login and a confirmed password, each field
// re-asked until valid, then registers and logs the user in.
func (a *App) registerFlow(ctx context.Context) (string, error) {
	a.ui.Clear()
	a.ui.Println("=== CADASTRO ===")
	a.ui.Println()

	var login string
	for {
		candidate, err := a.ui.ReadLine("Novo usuário (mín. 3 chars, letras/números/_/-): ")
		if err != nil {
			return "", err
		}
		if err := a.userVal.ValidateLogin(candidate); err != nil {
			a.ui.Println("Usuário inválido.")
			continue
		}
		if a.users.Exists(ctx, candidate) {
			a.ui.Println("Esse usuário já existe.")
			continue
		}
		login = candidate
		break
	}

	var password string
	for {
		first, err := a.ui.ReadPassword("Senha (mín. 4): ")
		if err != nil {
			return "", err
		}
		if err := a.userVal.ValidatePassword(first); err != nil {
			a.ui.Println("Senha muito curta.")
			continue
		}
		second, err := a.ui.ReadPassword("Confirmar senha: ")
		if err != nil {
			return "", err
		}
		if first != second {
			a.ui.Println("Senhas não batem.")
			continue
		}
		password = first
		break
	}

	if err := a.users.Register(ctx, login, password); err != nil {
		a.ui.Errorf("\nErro ao cadastrar: %v", err)
		a.ui.Pause()
		return "", nil
	}

	a.ui.Successf("\n✅ Usuário criado com sucesso!")
	a.ui.Pause()
	return login, nil
}
