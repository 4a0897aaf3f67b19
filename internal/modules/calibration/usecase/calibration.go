package usecase

import (
	"context"

	"cctune/internal/modules/calibration/domain"
	"cctune/internal/modules/calibration/dto"
	calibrationin "cctune/internal/modules/calibration/port/in"
	"cctune/internal/modules/calibration/service"
)

type Interactor struct {
	svc *service.CalibrationService
}

func NewInteractor(svc *service.CalibrationService) calibrationin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Load(ctx context.Context) (dto.SetOutput, error) {
	set, err := i.svc.Load(ctx)
	if err != nil {
		return dto.SetOutput{}, err
	}
	return toSetOutput(set), nil
}

func (i *Interactor) Save(ctx context.Context, input dto.SaveInput) (dto.SetOutput, error) {
	set := domain.Set{}
	for _, r := range input.Records {
		level, err := domain.ParseLevel(r.Level)
		if err != nil {
			return dto.SetOutput{}, err
		}
		set.Records = append(set.Records, domain.Record{
			Level:        level,
			WhiteBalance: r.WhiteBalance,
			Tint:         r.Tint,
		})
	}
	saved, err := i.svc.Save(ctx, set)
	if err != nil {
		return dto.SetOutput{}, err
	}
	return toSetOutput(saved), nil
}

func (i *Interactor) Exists(ctx context.Context) bool {
	return i.svc.Exists(ctx)
}

func (i *Interactor) Reset(ctx context.Context) error {
	return i.svc.Reset(ctx)
}

func toSetOutput(set domain.Set) dto.SetOutput {
	out := dto.SetOutput{}
	for _, r := range set.Sorted() {
		out.Records = append(out.Records, dto.RecordOutput{
			Level:        string(r.Level),
			Base:         r.Level.Base(),
			WhiteBalance: r.WhiteBalance,
			Tint:         r.Tint,
		})
	}
	return out
}
