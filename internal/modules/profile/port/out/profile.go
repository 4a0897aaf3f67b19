package out

import (
	"context"
	"time"

	"cctune/internal/modules/profile/domain"
)

type ProfileStore interface {
	// ListFiles returns profile file paths under the settings directory,
	// sorted. The directory is created when missing.
	ListFiles(ctx context.Context) ([]string, error)
	// Load parses one profile file into a document.
	Load(ctx context.Context, path string) (domain.Document, error)
	// Save rewrites the document's file atomically, preserving untouched
	// lines byte for byte.
	Save(ctx context.Context, doc domain.Document) error
}

// IndexRow is one projected profile in the sqlite read model.
type IndexRow struct {
	FilePath     string
	Name         string
	Temperature  string
	WhiteBalance float64
	Tint         float64
	UpdatedAt    time.Time
}

type ProfileIndexProjector interface {
	Reset(ctx context.Context) error
	UpsertFile(ctx context.Context, doc domain.Document, at time.Time) error
	List(ctx context.Context) ([]IndexRow, error)
}
