package in

import (
	"context"

	"cctune/internal/modules/profile/dto"
)

type Usecase interface {
	ListFiles(ctx context.Context) ([]string, error)
	SelectFile(ctx context.Context, path string) (dto.FileOutput, error)
	SelectProfile(ctx context.Context, path, name string) (dto.ProfileOutput, error)
	Save(ctx context.Context, input dto.SaveInput) (dto.ProfileOutput, error)
	Preview(ctx context.Context, input dto.PreviewInput) (dto.PreviewOutput, error)
	ListIndex(ctx context.Context) ([]dto.IndexOutput, error)
	Reindex(ctx context.Context) error
}
