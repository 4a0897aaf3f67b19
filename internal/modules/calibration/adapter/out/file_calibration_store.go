package out

import (
	"context"
	"os"
	"strings"

	"cctune/internal/modules/calibration/domain"
	calibrationout "cctune/internal/modules/calibration/port/out"
	"cctune/internal/platform/atomicfile"
	apperrors "cctune/internal/platform/errors"
)

type FileCalibrationStore struct {
	path string
}

func NewFileCalibrationStore(path string) calibrationout.CalibrationStore {
	return &FileCalibrationStore{path: path}
}

func (s *FileCalibrationStore) Load(_ context.Context) (domain.Set, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Set{}, apperrors.ErrNoCalibration
		}
		return domain.Set{}, &apperrors.LoadError{Path: s.path, Err: err}
	}
	if strings.TrimSpace(string(raw)) == "" {
		return domain.Set{}, apperrors.ErrNoCalibration
	}
	set, err := parseSet(string(raw))
	if err != nil {
		return domain.Set{}, &apperrors.LoadError{Path: s.path, Err: err}
	}
	return set, nil
}

func (s *FileCalibrationStore) Save(_ context.Context, set domain.Set) error {
	if err := atomicfile.WriteFile(s.path, []byte(renderSet(set)), 0o644); err != nil {
		return &apperrors.WriteError{Path: s.path, Err: err}
	}
	return nil
}

func (s *FileCalibrationStore) Exists(_ context.Context) bool {
	info, err := os.Stat(s.path)
	return err == nil && info.Size() > 0
}

func (s *FileCalibrationStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return &apperrors.WriteError{Path: s.path, Err: err}
	}
	return nil
}
