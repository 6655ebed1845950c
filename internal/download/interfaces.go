package download

import (
	"context"
	"errors"

	"github.com/ytget/plymouth-manager/internal/model"
)

// ErrTaskExists is returned by AddTask while an install of the same URL is unfinished
var ErrTaskExists = errors.New("task already exists")

// Downloader defines the interface for the download service.
type Downloader interface {
	SetUpdateCallback(func(*model.InstallTask))
	AddTask(ctx context.Context, entry model.CatalogEntry) (*model.InstallTask, error)
	GetTask(id string) (*model.InstallTask, bool)
	GetAllTasks() []*model.InstallTask
	RemoveTask(id string) error
}

// ArchiveInstaller installs a downloaded archive and removes it afterwards
type ArchiveInstaller interface {
	InstallFromArchive(ctx context.Context, archivePath string) (model.Theme, error)
}

// ProgressFunc receives a sample after every chunk when the total size is known
type ProgressFunc func(model.Progress)
