package cache

import (
	"context"

	"github.com/Luismorlan/choirmux/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type AppThemeDAO struct {
	table[model.AppTheme]
}

// Active returns the active theme, found is false when no theme is active.
func (d *AppThemeDAO) Active(ctx context.Context) (theme model.AppTheme, found bool, err error) {
	err = d.db.WithContext(ctx).Where("is_active = ?", true).Take(&theme).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return theme, false, nil
	}
	if err != nil {
		return theme, false, errors.Wrap(err, "get active theme")
	}
	return theme, true, nil
}

func (d *AppThemeDAO) WatchAll(ctx context.Context) (<-chan []model.AppTheme, error) {
	return d.watch(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	})
}

func (d *AppThemeDAO) DeactivateAll(ctx context.Context) error {
	return d.update(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", true)
	}, map[string]interface{}{"is_active": false})
}

// Activate marks a single theme active. It does not touch the others, call
// DeactivateAll first.
func (d *AppThemeDAO) Activate(ctx context.Context, id string) error {
	return d.update(ctx, byID(id), map[string]interface{}{"is_active": true})
}

type UIElementDAO struct {
	table[model.UIElement]
}

// WatchVisible streams visible elements top to bottom.
func (d *UIElementDAO) WatchVisible(ctx context.Context) (<-chan []model.UIElement, error) {
	return d.watch(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("is_visible = ?", true).Order("position_y")
	})
}

func (d *UIElementDAO) WatchByType(ctx context.Context, elementType model.UIElementType) (<-chan []model.UIElement, error) {
	return d.watch(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("type = ? AND is_visible = ?", elementType, true).Order("position_y")
	})
}
