package repository

import (
	"context"
	"time"

	"github.com/Luismorlan/choirmux/cache"
	"github.com/Luismorlan/choirmux/model"
	"github.com/Luismorlan/choirmux/remote"
)

type UserRepository struct {
	base
}

func NewUserRepository(store *cache.Store, docs remote.DocumentStore, blobs remote.BlobStore) *UserRepository {
	return &UserRepository{newBase(store, docs, blobs)}
}

func (r *UserRepository) UserByID(ctx context.Context, id string) (model.User, bool, error) {
	return r.store.Users.ByID(ctx, id)
}

func (r *UserRepository) UserByEmail(ctx context.Context, email string) (model.User, bool, error) {
	return r.store.Users.ByEmail(ctx, email)
}

func (r *UserRepository) Users(ctx context.Context) (<-chan []model.User, error) {
	return r.store.Users.WatchAll(ctx)
}

func (r *UserRepository) ActiveUsers(ctx context.Context) (<-chan []model.User, error) {
	return r.store.Users.WatchActive(ctx)
}

func (r *UserRepository) UsersByRole(ctx context.Context, role model.UserRole) (<-chan []model.User, error) {
	return r.store.Users.WatchByRole(ctx, role)
}

func (r *UserRepository) SaveUser(ctx context.Context, user model.User) error {
	return write[model.User](ctx, r.base, r.store.Users, user.Id, user)
}

func (r *UserRepository) DeleteUser(ctx context.Context, id string) error {
	return remove[model.User](ctx, r.base, r.store.Users, id)
}

func (r *UserRepository) SetUserActive(ctx context.Context, id string, isActive bool) error {
	return modify[model.User](ctx, r.base, r.store.Users, id, func(u *model.User) {
		u.IsActive = isActive
	})
}

// RecordLogin sets LastLoginAt of a cached user to now.
func (r *UserRepository) RecordLogin(ctx context.Context, id string) error {
	return modify[model.User](ctx, r.base, r.store.Users, id, func(u *model.User) {
		u.LastLoginAt = time.Now()
	})
}
