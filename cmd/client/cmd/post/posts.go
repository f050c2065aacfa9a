package post

import (
	"github.com/spf13/cobra"
)

// PostsCmd - родительская команда для операций с постами
var PostsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Управление постами",
	Long:  `Просмотр, создание и удаление постов сайта.`,
}

func init() {
	PostsCmd.AddCommand(listCmd, createCmd, deleteCmd)
}
