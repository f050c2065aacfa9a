// cmd/client/cmd/root.go
package cmd

import (
	"fmt"
	"os"

	"sitecms/cmd/client/cmd/job"
	"sitecms/cmd/client/cmd/output"
	"sitecms/cmd/client/cmd/post"
	"sitecms/internal/app/client"
	"sitecms/internal/app/client/config"
	"sitecms/internal/utils/logger"

	"github.com/spf13/cobra"
)

var (
	debug      bool
	jsonOutput bool
	serverURL  string
)

var rootCmd = &cobra.Command{
	Use:   "sitecms",
	Short: "sitecms - консоль администратора сайта",
	Long: `sitecms управляет постами и вакансиями сайта через его HTTP API.

Адрес сервера берется из флага --server или переменной SITECMS_SERVER.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg := config.MustLoad()

	// Переопределяем настройки из флагов командной строки
	if serverURL != "" {
		cfg.ServerURL = serverURL
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("ошибка конфигурации: %w", err)
		}
	}
	if debug {
		cfg.Env = config.EnvDebug
	}

	log := logger.New(cfg.Env)

	ctx := client.WithClient(cmd.Context(), client.New(cfg, log))
	ctx = output.WithPrinter(ctx, output.New(cmd.OutOrStdout(), jsonOutput))
	cmd.SetContext(ctx)

	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "вывод в формате JSON")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "URL сервера, например http://localhost:4000")

	rootCmd.AddCommand(post.PostsCmd)
	rootCmd.AddCommand(job.JobsCmd)
	rootCmd.AddCommand(healthCmd)
}
