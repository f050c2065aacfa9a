package job

import (
	"fmt"

	"sitecms/cmd/client/cmd/output"
	"sitecms/internal/app/client"

	"github.com/spf13/cobra"
)

var (
	title   string
	link    string
	company string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать вакансию",
	Long: `Создание вакансии.

Пример:
  sitecms jobs create --title "Go developer" --link https://example.com/jobs/1 --company Acme`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		res, err := c.CreateJob(cmd.Context(), client.JobInput{
			Title:   title,
			Link:    link,
			Company: company,
		})
		if err != nil {
			return fmt.Errorf("ошибка создания вакансии: %w", err)
		}

		p := output.FromContext(cmd.Context())
		if p.JSONMode() {
			return p.JSON(res)
		}
		p.Success("вакансия создана, ID: %d", res.ID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&title, "title", "t", "", "название вакансии")
	createCmd.Flags().StringVarP(&link, "link", "l", "", "ссылка на вакансию")
	createCmd.Flags().StringVarP(&company, "company", "c", "", "компания")
}
