package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Entity is implemented by every record type a Collection can manage,
// usually by embedding Meta. The store owns id and timestamp assignment;
// callers never set them.
type Entity interface {
	EntityID() string
	StampNew(id string, now time.Time)
	StampUpdated(now time.Time)
}

// Meta carries the server-assigned identity and timestamps shared by all
// entities. Embed it as the first field so id/createdAt/updatedAt lead the
// serialized record.
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *Meta) EntityID() string { return m.ID }

func (m *Meta) StampNew(id string, now time.Time) {
	m.ID = id
	m.CreatedAt = now
	m.UpdatedAt = now
}

func (m *Meta) StampUpdated(now time.Time) { m.UpdatedAt = now }

// reservedKeys are repository-owned fields that a patch may never override.
var reservedKeys = map[string]bool{
	"id":        true,
	"createdAt": true,
	"updatedAt": true,
	"timestamp": true,
}

// Config holds per-collection tuning applied through Options.
type Config struct {
	// Cap bounds the persisted record count; after an insert the sequence is
	// trimmed to the most recent Cap records, oldest dropped first. Zero
	// means unbounded.
	Cap int
}

// Option customises a Collection at construction time.
type Option func(*Config)

// WithCap bounds the collection to the n most recently inserted records.
func WithCap(n int) Option {
	return func(c *Config) { c.Cap = n }
}

// Collection is the typed CRUD façade over one collection file. Every
// operation is a whole-file cycle under the collection's lock: load the full
// sequence, mutate in memory, persist the full sequence.
type Collection[T any, PT interface {
	Entity
	*T
}] struct {
	store *Store
	file  string
	cfg   Config
}

// NewCollection binds a typed collection to one file of the store.
func NewCollection[T any, PT interface {
	Entity
	*T
}](store *Store, file string, opts ...Option) *Collection[T, PT] {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Collection[T, PT]{store: store, file: file, cfg: cfg}
}

// All returns the full record sequence in insertion order.
func (c *Collection[T, PT]) All(ctx context.Context) ([]T, error) {
	mu := c.store.lockFor(c.file)
	mu.Lock()
	defer mu.Unlock()
	return readAll[T](c.store, c.file)
}

// Get linear-scans the collection for the record with the given id.
func (c *Collection[T, PT]) Get(ctx context.Context, id string) (*T, error) {
	records, err := c.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if PT(&records[i]).EntityID() == id {
			return &records[i], nil
		}
	}
	return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
}

// Insert assigns an id and timestamps to v, appends it, and persists the
// collection. The id token is the creation time in epoch milliseconds; under
// the collection lock it is bumped until unused, so ids stay unique even for
// same-millisecond inserts.
func (c *Collection[T, PT]) Insert(ctx context.Context, v *T) (*T, error) {
	mu := c.store.lockFor(c.file)
	mu.Lock()
	defer mu.Unlock()

	records, err := readAll[T](c.store, c.file)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	token := now.UnixMilli()
	for c.idTaken(records, strconv.FormatInt(token, 10)) {
		token++
	}
	PT(v).StampNew(strconv.FormatInt(token, 10), now)

	records = append(records, *v)
	if c.cfg.Cap > 0 && len(records) > c.cfg.Cap {
		records = records[len(records)-c.cfg.Cap:]
	}
	if err := writeAll(c.store, c.file, records); err != nil {
		return nil, err
	}
	return v, nil
}

// Patch shallow-merges the given fields over the stored record, refreshes
// updatedAt, and persists. Repository-owned keys in the patch are ignored.
// Returns ErrNotFound, with no write, when the id is absent.
func (c *Collection[T, PT]) Patch(ctx context.Context, id string, patch map[string]any) (*T, error) {
	mu := c.store.lockFor(c.file)
	mu.Lock()
	defer mu.Unlock()

	records, err := readAll[T](c.store, c.file)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range records {
		if PT(&records[i]).EntityID() == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
	}

	merged, err := merge(&records[idx], patch)
	if err != nil {
		return nil, err
	}
	PT(&merged).StampUpdated(time.Now().UTC())
	records[idx] = merged

	if err := writeAll(c.store, c.file, records); err != nil {
		return nil, err
	}
	return &records[idx], nil
}

// Delete removes the record with the given id, if present, and persists the
// remainder. Deleting an absent id is a successful no-op.
func (c *Collection[T, PT]) Delete(ctx context.Context, id string) error {
	mu := c.store.lockFor(c.file)
	mu.Lock()
	defer mu.Unlock()

	records, err := readAll[T](c.store, c.file)
	if err != nil {
		return err
	}
	kept := records[:0]
	for i := range records {
		if PT(&records[i]).EntityID() != id {
			kept = append(kept, records[i])
		}
	}
	return writeAll(c.store, c.file, kept)
}

func (c *Collection[T, PT]) idTaken(records []T, id string) bool {
	for i := range records {
		if PT(&records[i]).EntityID() == id {
			return true
		}
	}
	return false
}

// merge overlays patch keys onto the current record through a JSON map
// round-trip, giving the same shallow-merge semantics as object spread.
func merge[T any](current *T, patch map[string]any) (T, error) {
	var out T
	raw, err := json.Marshal(current)
	if err != nil {
		return out, fmt.Errorf("marshal current record: %w", err)
	}
	base := make(map[string]any)
	if err := json.Unmarshal(raw, &base); err != nil {
		return out, fmt.Errorf("decode current record: %w", err)
	}
	for k, v := range patch {
		if reservedKeys[k] {
			continue
		}
		base[k] = v
	}
	raw, err = json.Marshal(base)
	if err != nil {
		return out, fmt.Errorf("marshal merged record: %w", err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode merged record: %w", err)
	}
	return out, nil
}
