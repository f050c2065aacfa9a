package storage

import (
	"sitecms/internal/app/server/config"
	"sitecms/internal/domain/record"
	"sitecms/internal/infrastructure/storage/jsonfile"

	"golang.org/x/exp/slog"
)

// Storage объединяет файловые коллекции постов и вакансий.
type Storage struct {
	Posts *jsonfile.Collection[record.Post]
	Jobs  *jsonfile.Collection[record.Job]
}

func New(cfg *config.Config, log *slog.Logger) *Storage {
	return &Storage{
		Posts: jsonfile.NewCollection[record.Post](cfg.Storage.PostsFile, log),
		Jobs:  jsonfile.NewCollection[record.Job](cfg.Storage.JobsFile, log),
	}
}
