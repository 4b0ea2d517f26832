package admin

import (
	"context"

	"github.com/hospkit/hospkit/internal/platform/storage"
)

// logCap bounds the persisted activity log, oldest entries dropped first.
const logCap = 100

// UserRepository is the typed CRUD façade over the users collection.
type UserRepository struct {
	coll *storage.Collection[SystemUser, *SystemUser]
}

func NewUserRepository(store *storage.Store) *UserRepository {
	return &UserRepository{coll: storage.NewCollection[SystemUser, *SystemUser](store, storage.UsersFile)}
}

func (r *UserRepository) GetAll(ctx context.Context) ([]SystemUser, error) {
	return r.coll.All(ctx)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*SystemUser, error) {
	return r.coll.Get(ctx, id)
}

// Create stores a new user. Permissions start empty; they are granted
// through later updates, never at signup.
func (r *UserRepository) Create(ctx context.Context, u SystemUser) (*SystemUser, error) {
	if u.Permissions == nil {
		u.Permissions = []string{}
	}
	return r.coll.Insert(ctx, &u)
}

func (r *UserRepository) Update(ctx context.Context, id string, patch map[string]any) (*SystemUser, error) {
	return r.coll.Patch(ctx, id, patch)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.coll.Delete(ctx, id)
}

// LogRepository is append/read-only: entries are never fetched singly,
// updated, or deleted from this layer.
type LogRepository struct {
	coll *storage.Collection[SystemLog, *SystemLog]
}

func NewLogRepository(store *storage.Store) *LogRepository {
	return &LogRepository{coll: storage.NewCollection[SystemLog, *SystemLog](store, storage.LogsFile, storage.WithCap(logCap))}
}

func (r *LogRepository) GetAll(ctx context.Context) ([]SystemLog, error) {
	return r.coll.All(ctx)
}

func (r *LogRepository) Append(ctx context.Context, l SystemLog) (*SystemLog, error) {
	return r.coll.Insert(ctx, &l)
}
