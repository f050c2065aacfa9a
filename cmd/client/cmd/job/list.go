package job

import (
	"fmt"

	"sitecms/cmd/client/cmd/output"
	"sitecms/internal/app/client"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Список вакансий, новые первыми",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		jobs, err := c.ListJobs(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка получения списка вакансий: %w", err)
		}

		return output.FromContext(cmd.Context()).Jobs(jobs)
	},
}
