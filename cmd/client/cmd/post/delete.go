package post

import (
	"fmt"

	"sitecms/cmd/client/cmd/output"
	"sitecms/internal/app/client"
	"sitecms/internal/app/client/prompt"

	"github.com/spf13/cobra"
)

var yes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Удалить пост",
	Long:  `Удаление поста по ID. Загруженный файл поста остается на сервере.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := prompt.ParseID(args[0])
		if err != nil {
			return err
		}

		if !yes && !prompt.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Удалить пост %d?", id)) {
			return nil
		}

		c, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		res, err := c.DeletePost(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("ошибка удаления поста: %w", err)
		}

		p := output.FromContext(cmd.Context())
		switch {
		case p.JSONMode():
			return p.JSON(res)
		case !res.Success:
			p.Warn("постов еще нет")
		case !res.Deleted:
			p.Warn("пост %d не найден", id)
		default:
			p.Success("пост %d удален", id)
		}
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&yes, "yes", "y", false, "не спрашивать подтверждение")
}
