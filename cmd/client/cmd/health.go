package cmd

import (
	"fmt"

	"sitecms/cmd/client/cmd/output"
	"sitecms/internal/app/client"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Проверить доступность сервера",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		if err := c.Health(cmd.Context()); err != nil {
			return fmt.Errorf("сервер недоступен: %w", err)
		}

		output.FromContext(cmd.Context()).Success("сервер доступен")
		return nil
	},
}
