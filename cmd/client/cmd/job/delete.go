package job

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
	Short: "Удалить вакансию",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := prompt.ParseID(args[0])
		if err != nil {
			return err
		}

		if !yes && !prompt.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Удалить вакансию %d?", id)) {
			return nil
		}

		c, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		res, err := c.DeleteJob(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("ошибка удаления вакансии: %w", err)
		}

		p := output.FromContext(cmd.Context())
		switch {
		case p.JSONMode():
			return p.JSON(res)
		case !res.Success:
			p.Warn("вакансий еще нет")
		case !res.Deleted:
			p.Warn("вакансия %d не найдена", id)
		default:
			p.Success("вакансия %d удалена", id)
		}
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&yes, "yes", "y", false, "не спрашивать подтверждение")
}
