package record

import (
	"context"

	"github.com/hospkit/hospkit/internal/platform/storage"
)

// Repository is the typed CRUD façade over the records collection. The HTTP
// surface only lists and creates records, but the full CRUD set is kept so
// the UI's archive and review flows have somewhere to grow.
type Repository struct {
	coll *storage.Collection[MedicalRecord, *MedicalRecord]
}

func NewRepository(store *storage.Store) *Repository {
	return &Repository{coll: storage.NewCollection[MedicalRecord, *MedicalRecord](store, storage.RecordsFile)}
}

func (r *Repository) GetAll(ctx context.Context) ([]MedicalRecord, error) {
	return r.coll.All(ctx)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*MedicalRecord, error) {
	return r.coll.Get(ctx, id)
}

func (r *Repository) Create(ctx context.Context, m MedicalRecord) (*MedicalRecord, error) {
	return r.coll.Insert(ctx, &m)
}

func (r *Repository) Update(ctx context.Context, id string, patch map[string]any) (*MedicalRecord, error) {
	return r.coll.Patch(ctx, id, patch)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.coll.Delete(ctx, id)
}
