package service

import (
	"context"

	"cctune/internal/modules/profile/domain"
	profileout "cctune/internal/modules/profile/port/out"
	"cctune/internal/platform/clock"
	"cctune/internal/platform/colorspace"
)

type ProfileService struct {
	clock         clock.Clock
	store         profileout.ProfileStore
	projector     profileout.ProfileIndexProjector
	neutralKelvin float64
}

func NewProfileService(clk clock.Clock, store profileout.ProfileStore, projector profileout.ProfileIndexProjector, neutralKelvin float64) *ProfileService {
	return &ProfileService{clock: clk, store: store, projector: projector, neutralKelvin: neutralKelvin}
}

func (s *ProfileService) ListFiles(ctx context.Context) ([]string, error) {
	return s.store.ListFiles(ctx)
}

// LoadFile parses a profile file and refreshes its slice of the index.
func (s *ProfileService) LoadFile(ctx context.Context, path string) (domain.Document, error) {
	doc, err := s.store.Load(ctx, path)
	if err != nil {
		return domain.Document{}, err
	}
	if err := doc.Validate(); err != nil {
		return domain.Document{}, err
	}
	// Index refresh is best-effort; the document is the source of truth.
	_ = s.projector.UpsertFile(ctx, doc, s.clock.Now())
	return doc, nil
}

// Save writes the updated profile back into its document and rewrites the
// file. The
// document is re-read first so a save can only ever touch the named entry.
func (s *ProfileService) Save(ctx context.Context, path string, updated domain.Profile) (domain.Profile, error) {
	doc, err := s.store.Load(ctx, path)
	if err != nil {
		return domain.Profile{}, err
	}
	if err := doc.Update(updated); err != nil {
		return domain.Profile{}, err
	}
	if err := s.store.Save(ctx, doc); err != nil {
		return domain.Profile{}, err
	}
	_ = s.projector.UpsertFile(ctx, doc, s.clock.Now())
	return updated, nil
}

// Preview computes the display color for a gray base under the combined
// corrections: monitor calibration bias, Kelvin warmth, and live sliders.
func (s *ProfileService) Preview(base float64, calibWB, calibTint float64, temperature string, userWB, userTint float64) colorspace.RGB {
	kelvinBias := 0.0
	if k, ok := (domain.Profile{Temperature: temperature}).TemperatureKelvin(); ok {
		kelvinBias = colorspace.KelvinBias(k, s.neutralKelvin)
	}
	wb := calibWB + kelvinBias + userWB
	tint := calibTint + userTint
	return colorspace.Compose(base, wb, tint)
}

func (s *ProfileService) ListIndex(ctx context.Context) ([]profileout.IndexRow, error) {
	return s.projector.List(ctx)
}

// Reindex rebuilds the sqlite read model from every profile file on disk.
func (s *ProfileService) Reindex(ctx context.Context) error {
	paths, err := s.store.ListFiles(ctx)
	if err != nil {
		return err
	}
	if err := s.projector.Reset(ctx); err != nil {
		return err
	}
	now := s.clock.Now()
	for _, path := range paths {
		doc, err := s.store.Load(ctx, path)
		if err != nil {
			return err
		}
		if err := s.projector.UpsertFile(ctx, doc, now); err != nil {
			return err
		}
	}
	return nil
}
