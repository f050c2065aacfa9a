package job

import (
	"github.com/spf13/cobra"
)

// JobsCmd - родительская команда для операций с вакансиями
var JobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Управление вакансиями",
	Long:  `Просмотр, создание и удаление вакансий.`,
}

func init() {
	JobsCmd.AddCommand(listCmd, createCmd, deleteCmd)
}
