package in

import (
	"context"

	"cctune/internal/modules/profile/dto"
	profilein "cctune/internal/modules/profile/port/in"
)

type CLIHandler struct {
	usecase profilein.Usecase
}

func NewCLIHandler(usecase profilein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListFiles(ctx context.Context) ([]string, error) {
	return h.usecase.ListFiles(ctx)
}

func (h CLIHandler) ShowFile(ctx context.Context, path string) (dto.FileOutput, error) {
	return h.usecase.SelectFile(ctx, path)
}

func (h CLIHandler) ShowProfile(ctx context.Context, path, name string) (dto.ProfileOutput, error) {
	return h.usecase.SelectProfile(ctx, path, name)
}

func (h CLIHandler) Set(ctx context.Context, path, name, temperature string, whiteBalance, tint float64) (dto.ProfileOutput, error) {
	return h.usecase.Save(ctx, dto.SaveInput{
		Path:         path,
		Name:         name,
		Temperature:  temperature,
		WhiteBalance: whiteBalance,
		Tint:         tint,
	})
}

func (h CLIHandler) Preview(ctx context.Context, input dto.PreviewInput) (dto.PreviewOutput, error) {
	return h.usecase.Preview(ctx, input)
}

func (h CLIHandler) List(ctx context.Context) ([]dto.IndexOutput, error) {
	return h.usecase.ListIndex(ctx)
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}
