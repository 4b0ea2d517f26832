package storage

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

func newTestStore(t *testing.T) (*Store, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return New(fs, "/data", zerolog.Nop()), fs
}

func TestInit_SeedsDefaults(t *testing.T) {
	s, fs := newTestStore(t)
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	for _, name := range CollectionFiles {
		exists, err := afero.Exists(fs, filepath.Join("/data", name))
		if err != nil || !exists {
			t.Errorf("expected %s to exist after Init (err=%v)", name, err)
		}
	}

	data, err := afero.ReadFile(fs, "/data/patients.json")
	if err != nil {
		t.Fatalf("read patients.json: %v", err)
	}
	var patients []map[string]any
	if err := json.Unmarshal(data, &patients); err != nil {
		t.Fatalf("parse patients.json: %v", err)
	}
	if len(patients) != 2 {
		t.Errorf("expected 2 seed patients, got %d", len(patients))
	}

	data, _ = afero.ReadFile(fs, "/data/records.json")
	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("parse records.json: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty records seed, got %d entries", len(records))
	}
}

func TestInit_Idempotent(t *testing.T) {
	s, fs := newTestStore(t)
	if err := s.Init(); err != nil {
		t.Fatalf("first Init: %v", err)
	}
	before, err := afero.ReadFile(fs, "/data/patients.json")
	if err != nil {
		t.Fatalf("read after first Init: %v", err)
	}

	if err := s.Init(); err != nil {
		t.Fatalf("second Init: %v", err)
	}
	after, _ := afero.ReadFile(fs, "/data/patients.json")
	if !bytes.Equal(before, after) {
		t.Error("second Init changed patients.json")
	}
}

func TestInit_NeverReseeds(t *testing.T) {
	s, fs := newTestStore(t)
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	custom := []byte(`[{"id":"custom"}]`)
	if err := afero.WriteFile(fs, "/data/patients.json", custom, 0o644); err != nil {
		t.Fatalf("write custom content: %v", err)
	}
	if err := s.Init(); err != nil {
		t.Fatalf("Init after modification: %v", err)
	}

	got, _ := afero.ReadFile(fs, "/data/patients.json")
	if !bytes.Equal(custom, got) {
		t.Error("Init overwrote an existing collection file")
	}
}

func TestReadAll_MissingFileIsEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	got, err := readAll[map[string]any](s, "nonexistent.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestReadAll_CorruptFileIsEmpty(t *testing.T) {
	s, fs := newTestStore(t)
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := afero.WriteFile(fs, "/data/appointments.json", []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	got, err := readAll[map[string]any](s, AppointmentsFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty slice for corrupt file, got %d records", len(got))
	}
}

func TestReadable(t *testing.T) {
	s, fs := newTestStore(t)
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if !s.Readable(PatientsFile) {
		t.Error("seeded patients.json should be readable")
	}
	afero.WriteFile(fs, "/data/patients.json", []byte("garbage"), 0o644)
	if s.Readable(PatientsFile) {
		t.Error("corrupt patients.json should not be readable")
	}
	if s.Readable("missing.json") {
		t.Error("missing file should not be readable")
	}
}

func TestUsage_SumsDataDir(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	total, err := s.Usage()
	if err != nil {
		t.Fatalf("Usage: %v", err)
	}
	if total <= 0 {
		t.Errorf("expected positive usage after seeding, got %d", total)
	}
}
