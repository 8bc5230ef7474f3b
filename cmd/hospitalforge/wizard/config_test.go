package wizard

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mrsinham/hospitalforge/internal/gen"
)

func TestConfigRoundTrip(t *testing.T) {
	opts := gen.DefaultOptions()
	opts.TotalRows = 5000
	opts.Output = "round_trip.csv"
	opts.Seed = 99
	opts.Pools.Patients = 2000
	opts.AdmissionProb = 0.45
	opts.StartDate = time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	opts.EndDate = time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := SaveToYAML(FromOptions(opts), path); err != nil {
		t.Fatalf("SaveToYAML: %v", err)
	}

	cfg, err := LoadFromYAML(path)
	if err != nil {
		t.Fatalf("LoadFromYAML: %v", err)
	}
	got, err := cfg.ToOptions()
	if err != nil {
		t.Fatalf("ToOptions: %v", err)
	}

	if got.TotalRows != opts.TotalRows {
		t.Errorf("rows = %d, want %d", got.TotalRows, opts.TotalRows)
	}
	if got.Output != opts.Output {
		t.Errorf("output = %q, want %q", got.Output, opts.Output)
	}
	if got.Seed != opts.Seed {
		t.Errorf("seed = %d, want %d", got.Seed, opts.Seed)
	}
	if got.Pools != opts.Pools {
		t.Errorf("pools = %+v, want %+v", got.Pools, opts.Pools)
	}
	if got.AdmissionProb != opts.AdmissionProb {
		t.Errorf("admission prob = %g, want %g", got.AdmissionProb, opts.AdmissionProb)
	}
	if !got.StartDate.Equal(opts.StartDate) || !got.EndDate.Equal(opts.EndDate) {
		t.Errorf("dates = %s..%s, want %s..%s", got.StartDate, got.EndDate, opts.StartDate, opts.EndDate)
	}
}

func TestToOptionsFillsDefaults(t *testing.T) {
	defaults := gen.DefaultOptions()
	cfg := Config{Rows: 1000, Pools: PoolConfig{Patients: 400, Doctors: 10, Staff: 20, Beds: 5, Equipment: 5, Medicines: 5, Hospitals: 2}}
	got, err := cfg.ToOptions()
	if err != nil {
		t.Fatalf("ToOptions: %v", err)
	}
	if got.Output != defaults.Output {
		t.Errorf("empty output did not fall back to default %q, got %q", defaults.Output, got.Output)
	}
	if got.ChunkSize != defaults.ChunkSize {
		t.Errorf("zero chunk size did not fall back to default %d, got %d", defaults.ChunkSize, got.ChunkSize)
	}
	if !got.StartDate.Equal(defaults.StartDate) || !got.EndDate.Equal(defaults.EndDate) {
		t.Errorf("empty dates did not fall back to defaults")
	}
}

func TestToOptionsRejectsBadDates(t *testing.T) {
	cfg := Config{StartDate: "01/06/2021"}
	if _, err := cfg.ToOptions(); err == nil {
		t.Fatal("expected error for malformed start_date")
	}
	cfg = Config{EndDate: "yesterday"}
	if _, err := cfg.ToOptions(); err == nil {
		t.Fatal("expected error for malformed end_date")
	}
}

func TestLoadFromYAMLErrors(t *testing.T) {
	if _, err := LoadFromYAML(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rows: [not a number"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadFromYAML(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
