package in

import (
	"context"

	"cctune/internal/modules/calibration/dto"
)

type Usecase interface {
	Load(ctx context.Context) (dto.SetOutput, error)
	Save(ctx context.Context, input dto.SaveInput) (dto.SetOutput, error)
	Exists(ctx context.Context) bool
	Reset(ctx context.Context) error
}
