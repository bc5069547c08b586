package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gastos/internal/app/cli"
	"gastos/internal/config"
	"gastos/internal/domain/expense"
	"gastos/internal/domain/user"
	"gastos/internal/infrastructure/storage/jsonfile"
	"gastos/internal/utils/logger"
)

var (
	cfg     *config.Config
	log     *slog.Logger
	dataDir string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "gastos",
	Short: "Gerenciador de gastos pessoais no terminal",
	Long: `gastos é um gerenciador de gastos pessoais operado por menus de texto.

Cada usuário autenticado mantém uma lista privada de gastos, gravada em um
arquivo próprio. O programa oferece cadastro e login, CRUD de gastos,
filtros por mês e intervalo, busca, resumos por categoria e exportação CSV.`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	SilenceErrors:     true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cli.New(
			cfg,
			log,
			user.NewService(
				jsonfile.NewUserRepository(cfg.UsersPath(), log),
				user.NewValidator(),
				log,
			),
			user.NewValidator(),
			expense.NewService(jsonfile.NewExpenseRepository(cfg.DataDir, log), log),
			os.Stdin,
			os.Stdout,
		)
		return app.Run(cmd.Context())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}

func setup(_ *cobra.Command, _ []string) error {
	// Flags override whatever the environment provides.
	if dataDir != "" {
		viper.Set("DATA_DIR", dataDir)
	}
	if debug {
		viper.Set("APP_ENV", config.EnvLocal)
	}

	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("carregar configuração: %w", err)
	}

	log = logger.New(cfg.Env)
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "diretório dos arquivos de dados")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "habilitar log de depuração")
}
