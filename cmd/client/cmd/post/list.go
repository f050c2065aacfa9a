package post

import (
	"fmt"

	"sitecms/cmd/client/cmd/output"
	"sitecms/internal/app/client"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Список постов, новые первыми",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		posts, err := c.ListPosts(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка получения списка постов: %w", err)
		}

		return output.FromContext(cmd.Context()).Posts(posts)
	},
}
