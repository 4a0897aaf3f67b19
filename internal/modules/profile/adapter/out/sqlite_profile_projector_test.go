package out_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	out "cctune/internal/modules/profile/adapter/out"
	"cctune/internal/modules/profile/domain"
)

func doc(path string, profiles ...domain.Profile) domain.Document {
	d := domain.Document{Path: path}
	for _, p := range profiles {
		d.Lines = append(d.Lines, domain.Line{IsProfile: true, Profile: p})
	}
	return d
}

func TestUpsertFileReplacesFileSlice(t *testing.T) {
	t.Parallel()
	projector, err := out.NewSQLiteProfileProjector(filepath.Join(t.TempDir(), ".cctune", "cctune.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	first := doc("CCT_Settings/phones.txt",
		domain.Profile{Name: "Daylight", Temperature: "5600"},
		domain.Profile{Name: "Tungsten", Temperature: "3200", WhiteBalance: 2, Tint: -1},
	)
	if err := projector.UpsertFile(ctx, first, at); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	// Second upsert with one profile gone and one changed.
	second := doc("CCT_Settings/phones.txt",
		domain.Profile{Name: "Tungsten", Temperature: "3000", WhiteBalance: 4, Tint: 0.5},
	)
	if err := projector.UpsertFile(ctx, second, at.Add(time.Hour)); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	rows, err := projector.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	row := rows[0]
	if row.Name != "Tungsten" || row.Temperature != "3000" || row.WhiteBalance != 4 || row.Tint != 0.5 {
		t.Fatalf("row = %+v", row)
	}
	if !row.UpdatedAt.Equal(at.Add(time.Hour)) {
		t.Fatalf("updated_at = %v", row.UpdatedAt)
	}
}

func TestResetEmptiesIndex(t *testing.T) {
	t.Parallel()
	projector, err := out.NewSQLiteProfileProjector(filepath.Join(t.TempDir(), "idx.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()

	d := doc("CCT_Settings/a.txt", domain.Profile{Name: "One", Temperature: "NA"})
	if err := projector.UpsertFile(ctx, d, time.Now()); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := projector.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	rows, err := projector.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("rows after reset = %d", len(rows))
	}
}

func TestListOrdersByFileThenName(t *testing.T) {
	t.Parallel()
	projector, err := out.NewSQLiteProfileProjector(filepath.Join(t.TempDir(), "idx.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()
	now := time.Now()

	if err := projector.UpsertFile(ctx, doc("b.txt", domain.Profile{Name: "Z", Temperature: "NA"}), now); err != nil {
		t.Fatalf("upsert b: %v", err)
	}
	if err := projector.UpsertFile(ctx, doc("a.txt",
		domain.Profile{Name: "B", Temperature: "NA"},
		domain.Profile{Name: "A", Temperature: "NA"},
	), now); err != nil {
		t.Fatalf("upsert a: %v", err)
	}

	rows, err := projector.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	got := make([]string, 0, len(rows))
	for _, r := range rows {
		got = append(got, r.FilePath+"/"+r.Name)
	}
	want := []string{"a.txt/A", "a.txt/B", "b.txt/Z"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}
