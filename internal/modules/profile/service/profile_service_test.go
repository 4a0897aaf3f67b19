package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cctune/internal/modules/profile/domain"
	profileout "cctune/internal/modules/profile/port/out"
	"cctune/internal/modules/profile/service"
	apperrors "cctune/internal/platform/errors"
)

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

type fakeProfileStore struct {
	docs  map[string]domain.Document
	saved int
}

func (f *fakeProfileStore) ListFiles(context.Context) ([]string, error) {
	out := make([]string, 0, len(f.docs))
	for path := range f.docs {
		out = append(out, path)
	}
	return out, nil
}

func (f *fakeProfileStore) Load(_ context.Context, path string) (domain.Document, error) {
	doc, ok := f.docs[path]
	if !ok {
		return domain.Document{}, &apperrors.LoadError{Path: path, Err: errors.New("no such file")}
	}
	// Deep copy so callers cannot mutate the "disk" copy.
	copied := domain.Document{Path: doc.Path, Lines: append([]domain.Line(nil), doc.Lines...)}
	return copied, nil
}

func (f *fakeProfileStore) Save(_ context.Context, doc domain.Document) error {
	f.docs[doc.Path] = domain.Document{Path: doc.Path, Lines: append([]domain.Line(nil), doc.Lines...)}
	f.saved++
	return nil
}

type recordingProjector struct {
	resets  int
	upserts []string
	rows    []profileout.IndexRow
}

func (p *recordingProjector) Reset(context.Context) error {
	p.resets++
	p.rows = nil
	return nil
}

func (p *recordingProjector) UpsertFile(_ context.Context, doc domain.Document, at time.Time) error {
	p.upserts = append(p.upserts, doc.Path)
	for _, prof := range doc.Profiles() {
		p.rows = append(p.rows, profileout.IndexRow{
			FilePath: doc.Path, Name: prof.Name,
			Temperature: prof.Temperature, WhiteBalance: prof.WhiteBalance, Tint: prof.Tint,
			UpdatedAt: at,
		})
	}
	return nil
}

func (p *recordingProjector) List(context.Context) ([]profileout.IndexRow, error) {
	return p.rows, nil
}

func phonesDoc() domain.Document {
	return domain.Document{
		Path: "CCT_Settings/phones.txt",
		Lines: []domain.Line{
			{Raw: "Daylight | 5600 | 0 | 0", IsProfile: true, Profile: domain.Profile{Name: "Daylight", Temperature: "5600"}},
			{Raw: "Tungsten | 3200 | 2 | -1", IsProfile: true, Profile: domain.Profile{Name: "Tungsten", Temperature: "3200", WhiteBalance: 2, Tint: -1}},
		},
	}
}

func newService(store *fakeProfileStore, projector *recordingProjector) *service.ProfileService {
	return service.NewProfileService(fixedClock{at: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}, store, projector, 6500)
}

func TestLoadFileRefreshesIndex(t *testing.T) {
	t.Parallel()
	store := &fakeProfileStore{docs: map[string]domain.Document{"CCT_Settings/phones.txt": phonesDoc()}}
	projector := &recordingProjector{}
	svc := newService(store, projector)

	doc, err := svc.LoadFile(context.Background(), "CCT_Settings/phones.txt")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := doc.Names(); len(got) != 2 || got[0] != "Daylight" || got[1] != "Tungsten" {
		t.Fatalf("names = %v", got)
	}
	if len(projector.upserts) != 1 {
		t.Fatalf("index not refreshed")
	}
}

func TestLoadMissingFileIsLoadError(t *testing.T) {
	t.Parallel()
	svc := newService(&fakeProfileStore{docs: map[string]domain.Document{}}, &recordingProjector{})
	_, err := svc.LoadFile(context.Background(), "CCT_Settings/gone.txt")
	if !apperrors.IsLoadError(err) {
		t.Fatalf("err = %v, want LoadError", err)
	}
}

func TestSaveUpdatesOnlyNamedProfile(t *testing.T) {
	t.Parallel()
	store := &fakeProfileStore{docs: map[string]domain.Document{"CCT_Settings/phones.txt": phonesDoc()}}
	svc := newService(store, &recordingProjector{})

	_, err := svc.Save(context.Background(), "CCT_Settings/phones.txt", domain.Profile{
		Name: "Tungsten", Temperature: "3000", WhiteBalance: 4, Tint: 0.5,
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded, err := svc.LoadFile(context.Background(), "CCT_Settings/phones.txt")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	tungsten, _ := reloaded.Find("Tungsten")
	if tungsten.Temperature != "3000" || tungsten.WhiteBalance != 4 || tungsten.Tint != 0.5 {
		t.Fatalf("saved profile = %+v", tungsten)
	}
	daylight, _ := reloaded.Find("Daylight")
	if daylight.Temperature != "5600" || daylight.WhiteBalance != 0 || daylight.Tint != 0 {
		t.Fatalf("sibling changed: %+v", daylight)
	}
}

func TestSaveUnknownProfile(t *testing.T) {
	t.Parallel()
	store := &fakeProfileStore{docs: map[string]domain.Document{"CCT_Settings/phones.txt": phonesDoc()}}
	svc := newService(store, &recordingProjector{})
	_, err := svc.Save(context.Background(), "CCT_Settings/phones.txt", domain.Profile{Name: "Fluorescent"})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if store.saved != 0 {
		t.Fatalf("file rewritten for an unknown profile")
	}
}

func TestPreviewWarmerTemperatureShiftsRed(t *testing.T) {
	t.Parallel()
	svc := newService(&fakeProfileStore{docs: map[string]domain.Document{}}, &recordingProjector{})

	before := svc.Preview(128, 0, 0, "3200", 2, -1)
	after := svc.Preview(128, 0, 0, "3000", 2, -1)
	if after.R < before.R {
		t.Fatalf("lower kelvin should not lower red: %+v -> %+v", before, after)
	}
	if after.B > before.B {
		t.Fatalf("lower kelvin should not raise blue: %+v -> %+v", before, after)
	}
}

func TestPreviewNATemperatureHasNoKelvinBias(t *testing.T) {
	t.Parallel()
	svc := newService(&fakeProfileStore{docs: map[string]domain.Document{}}, &recordingProjector{})
	na := svc.Preview(128, 1, -2, "NA", 3, 0.5)
	neutral := svc.Preview(128, 1, -2, "6500", 3, 0.5)
	if na != neutral {
		t.Fatalf("NA should equal neutral kelvin: %+v != %+v", na, neutral)
	}
}

func TestPreviewAppliesCalibrationBias(t *testing.T) {
	t.Parallel()
	svc := newService(&fakeProfileStore{docs: map[string]domain.Document{}}, &recordingProjector{})
	plain := svc.Preview(128, 0, 0, "NA", 0, 0)
	biased := svc.Preview(128, 5, -2, "NA", 0, 0)
	if biased.R != plain.R+5 || biased.B != plain.B-5 || biased.G != plain.G-2 {
		t.Fatalf("calibration bias not applied: %+v vs %+v", biased, plain)
	}
}

func TestReindexRebuildsFromAllFiles(t *testing.T) {
	t.Parallel()
	other := domain.Document{
		Path: "CCT_Settings/tablets.txt",
		Lines: []domain.Line{
			{Raw: "Studio | NA | 1 | 1", IsProfile: true, Profile: domain.Profile{Name: "Studio", Temperature: "NA", WhiteBalance: 1, Tint: 1}},
		},
	}
	store := &fakeProfileStore{docs: map[string]domain.Document{
		"CCT_Settings/phones.txt":  phonesDoc(),
		"CCT_Settings/tablets.txt": other,
	}}
	projector := &recordingProjector{}
	svc := newService(store, projector)

	if err := svc.Reindex(context.Background()); err != nil {
		t.Fatalf("reindex: %v", err)
	}
	if projector.resets != 1 {
		t.Fatalf("resets = %d", projector.resets)
	}
	rows, _ := svc.ListIndex(context.Background())
	if len(rows) != 3 {
		t.Fatalf("indexed rows = %d, want 3", len(rows))
	}
}
