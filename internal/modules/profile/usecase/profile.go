package usecase

import (
	"context"
	"errors"
	"time"

	calibrationin "cctune/internal/modules/calibration/port/in"
	"cctune/internal/modules/profile/domain"
	"cctune/internal/modules/profile/dto"
	profilein "cctune/internal/modules/profile/port/in"
	"cctune/internal/modules/profile/service"
	apperrors "cctune/internal/platform/errors"

	calibrationdomain "cctune/internal/modules/calibration/domain"
)

type Interactor struct {
	svc         *service.ProfileService
	calibration calibrationin.Usecase
}

func NewInteractor(svc *service.ProfileService, calibration calibrationin.Usecase) profilein.Usecase {
	return &Interactor{svc: svc, calibration: calibration}
}

func (i *Interactor) ListFiles(ctx context.Context) ([]string, error) {
	return i.svc.ListFiles(ctx)
}

func (i *Interactor) SelectFile(ctx context.Context, path string) (dto.FileOutput, error) {
	doc, err := i.svc.LoadFile(ctx, path)
	if err != nil {
		return dto.FileOutput{}, err
	}
	out := dto.FileOutput{Path: doc.Path}
	for _, p := range doc.Profiles() {
		out.Profiles = append(out.Profiles, toProfileOutput(p))
	}
	return out, nil
}

func (i *Interactor) SelectProfile(ctx context.Context, path, name string) (dto.ProfileOutput, error) {
	doc, err := i.svc.LoadFile(ctx, path)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	p, err := doc.Find(name)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return toProfileOutput(p), nil
}

func (i *Interactor) Save(ctx context.Context, input dto.SaveInput) (dto.ProfileOutput, error) {
	saved, err := i.svc.Save(ctx, input.Path, domain.Profile{
		Name:         input.Name,
		Temperature:  input.Temperature,
		WhiteBalance: input.WhiteBalance,
		Tint:         input.Tint,
	})
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return toProfileOutput(saved), nil
}

// Preview resolves the test color's calibration bias (zero when the monitor
// was never calibrated) and folds it into the color computation.
func (i *Interactor) Preview(ctx context.Context, input dto.PreviewInput) (dto.PreviewOutput, error) {
	level, err := calibrationdomain.ParseLevel(input.TestColor)
	if err != nil {
		return dto.PreviewOutput{}, err
	}

	var calibWB, calibTint float64
	if i.calibration != nil {
		set, err := i.calibration.Load(ctx)
		if err != nil && !errors.Is(err, apperrors.ErrNoCalibration) {
			return dto.PreviewOutput{}, err
		}
		for _, r := range set.Records {
			if r.Level == string(level) {
				calibWB = r.WhiteBalance
				calibTint = r.Tint
			}
		}
	}

	color := i.svc.Preview(level.Base(), calibWB, calibTint, input.Temperature, input.WhiteBalance, input.Tint)
	return dto.PreviewOutput{R: color.R, G: color.G, B: color.B, Hex: color.Hex()}, nil
}

func (i *Interactor) ListIndex(ctx context.Context) ([]dto.IndexOutput, error) {
	rows, err := i.svc.ListIndex(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.IndexOutput, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.IndexOutput{
			FilePath:     row.FilePath,
			Name:         row.Name,
			Temperature:  row.Temperature,
			WhiteBalance: row.WhiteBalance,
			Tint:         row.Tint,
			UpdatedAt:    row.UpdatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

func (i *Interactor) Reindex(ctx context.Context) error {
	return i.svc.Reindex(ctx)
}

func toProfileOutput(p domain.Profile) dto.ProfileOutput {
	return dto.ProfileOutput{
		Name:         p.Name,
		Temperature:  p.Temperature,
		WhiteBalance: p.WhiteBalance,
		Tint:         p.Tint,
	}
}
