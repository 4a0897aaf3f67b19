package in

import (
	"context"

	"cctune/internal/modules/calibration/dto"
	calibrationin "cctune/internal/modules/calibration/port/in"
)

type CLIHandler struct {
	usecase calibrationin.Usecase
}

func NewCLIHandler(usecase calibrationin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Show(ctx context.Context) (dto.SetOutput, error) {
	return h.usecase.Load(ctx)
}

func (h CLIHandler) Save(ctx context.Context, input dto.SaveInput) (dto.SetOutput, error) {
	return h.usecase.Save(ctx, input)
}

func (h CLIHandler) Exists(ctx context.Context) bool {
	return h.usecase.Exists(ctx)
}

func (h CLIHandler) Reset(ctx context.Context) error {
	return h.usecase.Reset(ctx)
}
