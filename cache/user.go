package cache

import (
	"context"

	"github.com/Luismorlan/choirmux/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserDAO struct {
	table[model.User]
}

// ByEmail returns the user signed up with email, found is false if none.
func (d *UserDAO) ByEmail(ctx context.Context, email string) (user model.User, found bool, err error) {
	err = d.db.WithContext(ctx).Where("email = ?", email).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, false, nil
	}
	if err != nil {
		return user, false, errors.Wrapf(err, "get user by email %s", email)
	}
	return user, true, nil
}

func (d *UserDAO) WatchAll(ctx context.Context) (<-chan []model.User, error) {
	return d.watch(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Order("name")
	})
}

func (d *UserDAO) WatchActive(ctx context.Context) (<-chan []model.User, error) {
	return d.watch(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", true).Order("name")
	})
}

func (d *UserDAO) WatchByRole(ctx context.Context, role model.UserRole) (<-chan []model.User, error) {
	return d.watch(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("role = ?", role).Order("name")
	})
}
