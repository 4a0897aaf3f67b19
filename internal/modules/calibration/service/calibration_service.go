package service

import (
	"context"

	"cctune/internal/modules/calibration/domain"
	calibrationout "cctune/internal/modules/calibration/port/out"
)

type CalibrationService struct {
	store calibrationout.CalibrationStore
}

func NewCalibrationService(store calibrationout.CalibrationStore) *CalibrationService {
	return &CalibrationService{store: store}
}

func (s *CalibrationService) Load(ctx context.Context) (domain.Set, error) {
	return s.store.Load(ctx)
}

// Save persists a complete set. Partial sets are rejected here so no code
// path can ever write fewer than five records.
func (s *CalibrationService) Save(ctx context.Context, set domain.Set) (domain.Set, error) {
	if err := set.Validate(); err != nil {
		return domain.Set{}, err
	}
	if err := s.store.Save(ctx, set); err != nil {
		return domain.Set{}, err
	}
	return set, nil
}

func (s *CalibrationService) Exists(ctx context.Context) bool {
	return s.store.Exists(ctx)
}

func (s *CalibrationService) Reset(ctx context.Context) error {
	return s.store.Clear(ctx)
}
