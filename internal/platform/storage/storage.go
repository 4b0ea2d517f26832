// Package storage implements the flat-file persistence layer for the
// hospital administration backend. Every collection lives in one JSON file
// holding the full ordered record array; reads load the whole file and
// writes replace it. The Store serializes read-modify-write cycles per
// collection, and Collection provides the typed CRUD façade the domain
// repositories are built on.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// ErrNotFound reports that no record with the requested id exists in the
// collection. It is a normal result, not a fault: handlers map it to 404.
var ErrNotFound = errors.New("record not found")

// Collection file names. One file per entity type under the data directory.
const (
	PatientsFile     = "patients.json"
	DoctorsFile      = "doctors.json"
	AppointmentsFile = "appointments.json"
	RecordsFile      = "records.json"
	UsersFile        = "users.json"
	LogsFile         = "logs.json"
	InsightsFile     = "insights.json"
)

// CollectionFiles lists every collection the store manages. Init seeds each
// of them when the backing file is absent.
var CollectionFiles = []string{
	PatientsFile,
	DoctorsFile,
	AppointmentsFile,
	RecordsFile,
	UsersFile,
	LogsFile,
	InsightsFile,
}

// Store is the collection-agnostic persistence primitive. It owns the data
// directory, seeds default collections, and hands out per-collection locks
// so that concurrent read-modify-write cycles on the same file cannot lose
// updates. The filesystem is injected so tests can run on afero.NewMemMapFs.
type Store struct {
	fs  afero.Fs
	dir string
	log zerolog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New builds a Store rooted at dir on the given filesystem. Call Init before
// first use (repositories also call it lazily on every operation).
func New(fs afero.Fs, dir string, logger zerolog.Logger) *Store {
	return &Store{
		fs:    fs,
		dir:   dir,
		log:   logger.With().Str("component", "storage").Logger(),
		locks: make(map[string]*sync.Mutex),
	}
}

// Dir returns the data directory the store writes under.
func (s *Store) Dir() string { return s.dir }

// Init creates the data directory and seeds every collection file that does
// not yet exist. It is idempotent and cheap once the files are in place, so
// it is safe to run on every request.
func (s *Store) Init() error {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir %s: %w", s.dir, err)
	}
	for name, records := range seedRecords() {
		if err := s.seedFile(name, records); err != nil {
			return err
		}
	}
	return nil
}

// seedFile writes the default record set if and only if the collection file
// is absent. Existing files are never touched, whatever they contain.
func (s *Store) seedFile(name string, records []map[string]any) error {
	path := s.path(name)
	exists, err := afero.Exists(s.fs, path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if exists {
		return nil
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal seed for %s: %w", name, err)
	}
	if err := afero.WriteFile(s.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("seed %s: %w", path, err)
	}
	s.log.Info().Str("collection", name).Int("records", len(records)).Msg("seeded collection")
	return nil
}

// Readable reports whether the named collection file can be opened and
// parsed as a JSON array. Used by the health endpoint.
func (s *Store) Readable(name string) bool {
	data, err := afero.ReadFile(s.fs, s.path(name))
	if err != nil {
		return false
	}
	var probe []json.RawMessage
	return json.Unmarshal(data, &probe) == nil
}

// Usage returns the total size in bytes of all files in the data directory.
func (s *Store) Usage() (int64, error) {
	infos, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, info := range infos {
		if !info.IsDir() {
			total += info.Size()
		}
	}
	return total, nil
}

// lockFor returns the mutex guarding one collection file.
func (s *Store) lockFor(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	mu, ok := s.locks[name]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[name] = mu
	}
	return mu
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// readAll loads and parses the entire collection file. Missing or corrupt
// files yield an empty slice rather than an error: a collection that cannot
// be read is treated as empty, matching the fail-open read contract.
func readAll[T any](s *Store, name string) ([]T, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, s.path(name))
	if err != nil {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.Warn().Str("collection", name).Err(err).Msg("unparseable collection file, treating as empty")
		return []T{}, nil
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// writeAll replaces the collection file with the full record sequence. The
// payload lands in a temp file first and is renamed into place, so readers
// never observe a half-written array.
func writeAll[T any](s *Store, name string, records []T) error {
	if err := s.Init(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	path := s.path(name)
	tmp := path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
