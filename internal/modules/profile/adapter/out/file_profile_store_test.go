package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	out "cctune/internal/modules/profile/adapter/out"
	"cctune/internal/modules/profile/domain"
	apperrors "cctune/internal/platform/errors"
)

const phonesFile = `# office phones
Daylight | 5600 | 0 | 0

Tungsten | 3200 | 2 | -1
short | line
Overcast | NA | 0.5 | 0.0
`

func writePhones(t *testing.T) (dir, path string) {
	t.Helper()
	dir = t.TempDir()
	path = filepath.Join(dir, "phones.txt")
	if err := os.WriteFile(path, []byte(phonesFile), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return dir, path
}

func TestLoadParsesProfilesAndKeepsOtherLines(t *testing.T) {
	t.Parallel()
	dir, path := writePhones(t)
	store := out.NewFileProfileStore(dir)

	doc, err := store.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	names := doc.Names()
	if len(names) != 3 || names[0] != "Daylight" || names[1] != "Tungsten" || names[2] != "Overcast" {
		t.Fatalf("names = %v", names)
	}
	tungsten, err := doc.Find("Tungsten")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if tungsten.WhiteBalance != 2 || tungsten.Tint != -1 || tungsten.Temperature != "3200" {
		t.Fatalf("tungsten = %+v", tungsten)
	}
	overcast, _ := doc.Find("Overcast")
	if _, ok := overcast.TemperatureKelvin(); ok {
		t.Fatalf("NA temperature should not parse as kelvin")
	}
	if len(doc.Lines) != 6 {
		t.Fatalf("line count = %d, want 6", len(doc.Lines))
	}
}

func TestSavePreservesSiblingsByteForByte(t *testing.T) {
	t.Parallel()
	dir, path := writePhones(t)
	store := out.NewFileProfileStore(dir)
	ctx := context.Background()

	doc, err := store.Load(ctx, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := doc.Update(domain.Profile{Name: "Tungsten", Temperature: "3000", WhiteBalance: 4, Tint: 0.5}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := store.Save(ctx, doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := `# office phones
Daylight | 5600 | 0 | 0

Tungsten | 3000 | 4.0 | 0.5
short | line
Overcast | NA | 0.5 | 0.0
`
	if string(got) != want {
		t.Fatalf("rewritten file:\n%s\nwant:\n%s", got, want)
	}
}

func TestSaveThenLoadRoundTripsSavedValues(t *testing.T) {
	t.Parallel()
	dir, path := writePhones(t)
	store := out.NewFileProfileStore(dir)
	ctx := context.Background()

	doc, _ := store.Load(ctx, path)
	if err := doc.Update(domain.Profile{Name: "Daylight", Temperature: "5400", WhiteBalance: -1.5, Tint: 2}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := store.Save(ctx, doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded, err := store.Load(ctx, path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	daylight, err := reloaded.Find("Daylight")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if daylight.Temperature != "5400" || daylight.WhiteBalance != -1.5 || daylight.Tint != 2 {
		t.Fatalf("daylight = %+v", daylight)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	store := out.NewFileProfileStore(t.TempDir())
	_, err := store.Load(context.Background(), filepath.Join("nowhere", "gone.txt"))
	if !apperrors.IsLoadError(err) {
		t.Fatalf("err = %v, want LoadError", err)
	}
}

func TestListFilesCreatesDirAndSorts(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "CCT_Settings")
	store := out.NewFileProfileStore(dir)
	ctx := context.Background()

	files, err := store.ListFiles(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("fresh dir should be empty, got %v", files)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("dir should exist: %v", err)
	}

	for _, name := range []string{"b.txt", "a.txt", "ignored.csv"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
	}
	files, err = store.ListFiles(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(files) != 2 || filepath.Base(files[0]) != "a.txt" || filepath.Base(files[1]) != "b.txt" {
		t.Fatalf("files = %v", files)
	}
}
