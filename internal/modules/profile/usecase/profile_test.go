package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	calibrationdto "cctune/internal/modules/calibration/dto"
	"cctune/internal/modules/profile/domain"
	"cctune/internal/modules/profile/dto"
	profileout "cctune/internal/modules/profile/port/out"
	"cctune/internal/modules/profile/service"
	"cctune/internal/modules/profile/usecase"
	apperrors "cctune/internal/platform/errors"
)

type staticClock struct{}

func (staticClock) Now() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) }

type memStore struct {
	docs map[string]domain.Document
}

func (m *memStore) ListFiles(context.Context) ([]string, error) {
	out := make([]string, 0, len(m.docs))
	for p := range m.docs {
		out = append(out, p)
	}
	return out, nil
}

func (m *memStore) Load(_ context.Context, path string) (domain.Document, error) {
	doc, ok := m.docs[path]
	if !ok {
		return domain.Document{}, &apperrors.LoadError{Path: path, Err: errors.New("missing")}
	}
	return domain.Document{Path: doc.Path, Lines: append([]domain.Line(nil), doc.Lines...)}, nil
}

func (m *memStore) Save(_ context.Context, doc domain.Document) error {
	m.docs[doc.Path] = doc
	return nil
}

type nopProjector struct{}

func (nopProjector) Reset(context.Context) error { return nil }
func (nopProjector) UpsertFile(context.Context, domain.Document, time.Time) error {
	return nil
}
func (nopProjector) List(context.Context) ([]profileout.IndexRow, error) { return nil, nil }

// fakeCalibration serves a stored gray-level bias like the calibration
// module does after a completed wizard run.
type fakeCalibration struct {
	set    calibrationdto.SetOutput
	absent bool
}

func (f fakeCalibration) Load(context.Context) (calibrationdto.SetOutput, error) {
	if f.absent {
		return calibrationdto.SetOutput{}, apperrors.ErrNoCalibration
	}
	return f.set, nil
}

func (f fakeCalibration) Save(_ context.Context, _ calibrationdto.SaveInput) (calibrationdto.SetOutput, error) {
	return calibrationdto.SetOutput{}, nil
}

func (f fakeCalibration) Exists(context.Context) bool { return !f.absent }
func (f fakeCalibration) Reset(context.Context) error { return nil }

func interactorWith(cal fakeCalibration) (*memStore, interface {
	SelectFile(ctx context.Context, path string) (dto.FileOutput, error)
	SelectProfile(ctx context.Context, path, name string) (dto.ProfileOutput, error)
	Save(ctx context.Context, input dto.SaveInput) (dto.ProfileOutput, error)
	Preview(ctx context.Context, input dto.PreviewInput) (dto.PreviewOutput, error)
}) {
	store := &memStore{docs: map[string]domain.Document{
		"phones.txt": {
			Path: "phones.txt",
			Lines: []domain.Line{
				{Raw: "Daylight | 5600 | 0 | 0", IsProfile: true, Profile: domain.Profile{Name: "Daylight", Temperature: "5600"}},
				{Raw: "Tungsten | 3200 | 2 | -1", IsProfile: true, Profile: domain.Profile{Name: "Tungsten", Temperature: "3200", WhiteBalance: 2, Tint: -1}},
			},
		},
	}}
	svc := service.NewProfileService(staticClock{}, store, nopProjector{}, 6500)
	return store, usecase.NewInteractor(svc, cal)
}

func TestSelectProfileNotFound(t *testing.T) {
	t.Parallel()
	_, uc := interactorWith(fakeCalibration{absent: true})
	_, err := uc.SelectProfile(context.Background(), "phones.txt", "Fluorescent")
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSelectProfileSeedsSliders(t *testing.T) {
	t.Parallel()
	_, uc := interactorWith(fakeCalibration{absent: true})
	p, err := uc.SelectProfile(context.Background(), "phones.txt", "Tungsten")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if p.Temperature != "3200" || p.WhiteBalance != 2 || p.Tint != -1 {
		t.Fatalf("profile = %+v", p)
	}
}

func TestPreviewUsesCalibrationBiasForTestColor(t *testing.T) {
	t.Parallel()
	cal := fakeCalibration{set: calibrationdto.SetOutput{Records: []calibrationdto.RecordOutput{
		{Level: "gray", Base: 128, WhiteBalance: 5, Tint: -2},
		{Level: "white", Base: 255, WhiteBalance: -4, Tint: 2},
	}}}
	_, uc := interactorWith(cal)

	got, err := uc.Preview(context.Background(), dto.PreviewInput{TestColor: "gray", Temperature: "NA"})
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if got.R != 133 || got.G != 126 || got.B != 123 {
		t.Fatalf("preview = %+v", got)
	}
}

func TestPreviewWithoutCalibrationFallsBackToZeroBias(t *testing.T) {
	t.Parallel()
	_, uc := interactorWith(fakeCalibration{absent: true})
	got, err := uc.Preview(context.Background(), dto.PreviewInput{TestColor: "gray", Temperature: "NA"})
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if got.R != 128 || got.G != 128 || got.B != 128 {
		t.Fatalf("preview = %+v", got)
	}
}

func TestPreviewRejectsUnknownTestColor(t *testing.T) {
	t.Parallel()
	_, uc := interactorWith(fakeCalibration{absent: true})
	if _, err := uc.Preview(context.Background(), dto.PreviewInput{TestColor: "magenta"}); err == nil {
		t.Fatalf("unknown test color should fail")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()
	store, uc := interactorWith(fakeCalibration{absent: true})
	_, err := uc.Save(context.Background(), dto.SaveInput{
		Path: "phones.txt", Name: "Tungsten", Temperature: "3000", WhiteBalance: 4, Tint: 0.5,
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	doc := store.docs["phones.txt"]
	p, err := doc.Find("Tungsten")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if p.Temperature != "3000" || p.WhiteBalance != 4 || p.Tint != 0.5 {
		t.Fatalf("persisted = %+v", p)
	}
	sibling, _ := doc.Find("Daylight")
	if sibling.Temperature != "5600" {
		t.Fatalf("sibling changed: %+v", sibling)
	}
}
