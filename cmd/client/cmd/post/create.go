package post

import (
	"fmt"

	"sitecms/cmd/client/cmd/output"
	"sitecms/internal/app/client"

	"github.com/spf13/cobra"
)

var (
	title     string
	content   string
	postType  string
	mediaPath string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать пост",
	Long: `Создание поста. Файл из --media загружается вместе с постом.

Примеры:
  sitecms posts create --title "Hello" --content "World"
  sitecms posts create --title "Фото" --content "..." --type News --media ./cat.png`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		res, err := c.CreatePost(cmd.Context(), client.PostInput{
			Title:     title,
			Content:   content,
			Type:      postType,
			MediaPath: mediaPath,
		})
		if err != nil {
			return fmt.Errorf("ошибка создания поста: %w", err)
		}

		p := output.FromContext(cmd.Context())
		if p.JSONMode() {
			return p.JSON(res)
		}
		p.Success("пост создан, ID: %d", res.ID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&title, "title", "t", "", "заголовок")
	createCmd.Flags().StringVarP(&content, "content", "c", "", "текст поста")
	createCmd.Flags().StringVar(&postType, "type", "", "тип поста (по умолчанию General)")
	createCmd.Flags().StringVarP(&mediaPath, "media", "m", "", "путь к изображению или видео")
}
