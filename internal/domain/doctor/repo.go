package doctor

import (
	"context"

	"github.com/hospkit/hospkit/internal/platform/storage"
)

// Repository is the typed CRUD façade over the doctors collection.
type Repository struct {
	coll *storage.Collection[Doctor, *Doctor]
}

func NewRepository(store *storage.Store) *Repository {
	return &Repository{coll: storage.NewCollection[Doctor, *Doctor](store, storage.DoctorsFile)}
}

func (r *Repository) GetAll(ctx context.Context) ([]Doctor, error) {
	return r.coll.All(ctx)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Doctor, error) {
	return r.coll.Get(ctx, id)
}

func (r *Repository) Create(ctx context.Context, d Doctor) (*Doctor, error) {
	return r.coll.Insert(ctx, &d)
}

func (r *Repository) Update(ctx context.Context, id string, patch map[string]any) (*Doctor, error) {
	return r.coll.Patch(ctx, id, patch)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.coll.Delete(ctx, id)
}
