package appointment

import (
	"context"

	"github.com/hospkit/hospkit/internal/platform/storage"
)

// Repository is the typed CRUD façade over the appointments collection.
type Repository struct {
	coll *storage.Collection[Appointment, *Appointment]
}

func NewRepository(store *storage.Store) *Repository {
	return &Repository{coll: storage.NewCollection[Appointment, *Appointment](store, storage.AppointmentsFile)}
}

func (r *Repository) GetAll(ctx context.Context) ([]Appointment, error) {
	return r.coll.All(ctx)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Appointment, error) {
	return r.coll.Get(ctx, id)
}

func (r *Repository) Create(ctx context.Context, a Appointment) (*Appointment, error) {
	return r.coll.Insert(ctx, &a)
}

func (r *Repository) Update(ctx context.Context, id string, patch map[string]any) (*Appointment, error) {
	return r.coll.Patch(ctx, id, patch)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.coll.Delete(ctx, id)
}
