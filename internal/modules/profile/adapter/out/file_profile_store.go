package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"cctune/internal/modules/profile/domain"
	profileout "cctune/internal/modules/profile/port/out"
	"cctune/internal/platform/atomicfile"
	apperrors "cctune/internal/platform/errors"
)

type FileProfileStore struct {
	dir string
}

func NewFileProfileStore(dir string) profileout.ProfileStore {
	return &FileProfileStore{dir: dir}
}

func (s *FileProfileStore) ListFiles(_ context.Context) ([]string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profiles dir: %w", err)
	}
	matches, err := filepath.Glob(filepath.Join(s.dir, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("glob profile files: %w", err)
	}
	sort.Strings(matches)
	return matches, nil
}

func (s *FileProfileStore) Load(_ context.Context, path string) (domain.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Document{}, &apperrors.LoadError{Path: path, Err: err}
	}
	return parseDocument(path, string(raw)), nil
}

func (s *FileProfileStore) Save(_ context.Context, doc domain.Document) error {
	if err := atomicfile.WriteFile(doc.Path, []byte(renderDocument(doc)), 0o644); err != nil {
		return &apperrors.WriteError{Path: doc.Path, Err: err}
	}
	return nil
}
