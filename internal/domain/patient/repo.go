package patient

import (
	"context"

	"github.com/hospkit/hospkit/internal/platform/storage"
)

// Repository is the typed CRUD façade over the patients collection.
type Repository struct {
	coll *storage.Collection[Patient, *Patient]
}

func NewRepository(store *storage.Store) *Repository {
	return &Repository{coll: storage.NewCollection[Patient, *Patient](store, storage.PatientsFile)}
}

func (r *Repository) GetAll(ctx context.Context) ([]Patient, error) {
	return r.coll.All(ctx)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Patient, error) {
	return r.coll.Get(ctx, id)
}

func (r *Repository) Create(ctx context.Context, p Patient) (*Patient, error) {
	return r.coll.Insert(ctx, &p)
}

func (r *Repository) Update(ctx context.Context, id string, patch map[string]any) (*Patient, error) {
	return r.coll.Patch(ctx, id, patch)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.coll.Delete(ctx, id)
}
