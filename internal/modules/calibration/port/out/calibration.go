package out

import (
	"context"

	"cctune/internal/modules/calibration/domain"
)

type CalibrationStore interface {
	// Load reads the persisted set. Returns apperrors.ErrNoCalibration
	// when the file is absent or empty.
	Load(ctx context.Context) (domain.Set, error)
	// Save replaces the whole calibration file atomically.
	Save(ctx context.Context, set domain.Set) error
	// Exists reports whether a non-empty calibration file is present,
	// which is the sole trigger for skipping the wizard.
	Exists(ctx context.Context) bool
	// Clear removes the calibration file so the wizard runs again.
	Clear(ctx context.Context) error
}
