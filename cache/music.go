package cache

import (
	"context"

	"github.com/Luismorlan/choirmux/model"
	"gorm.io/gorm"
)

type MusicDAO struct {
	table[model.Music]
}

func activeMusic(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("uploaded_at desc")
}

// WatchActive streams every active music, newest upload first.
func (d *MusicDAO) WatchActive(ctx context.Context) (<-chan []model.Music, error) {
	return d.watch(ctx, func(db *gorm.DB) *gorm.DB {
		return newestFirst(activeMusic(db))
	})
}

func (d *MusicDAO) WatchByCategory(ctx context.Context, category string) (<-chan []model.Music, error) {
	return d.watch(ctx, func(db *gorm.DB) *gorm.DB {
		return newestFirst(activeMusic(db).Where("category = ?", category))
	})
}

func (d *MusicDAO) WatchByMonth(ctx context.Context, month string, year int) (<-chan []model.Music, error) {
	return d.watch(ctx, func(db *gorm.DB) *gorm.DB {
		return newestFirst(activeMusic(db).Where("month = ? AND year = ?", month, year))
	})
}

// WatchCategories streams the distinct category names used by active music.
func (d *MusicDAO) WatchCategories(ctx context.Context) (<-chan []string, error) {
	return pluck[string](ctx, d.table, "category", func(db *gorm.DB) *gorm.DB {
		return activeMusic(db).Order("category")
	})
}

func (d *MusicDAO) WatchMonthsByYear(ctx context.Context, year int) (<-chan []string, error) {
	return pluck[string](ctx, d.table, "month", func(db *gorm.DB) *gorm.DB {
		return activeMusic(db).Where("year = ?", year).Order("month")
	})
}

// WatchYears streams the distinct years of active music, latest first.
func (d *MusicDAO) WatchYears(ctx context.Context) (<-chan []int, error) {
	return pluck[int](ctx, d.table, "year", func(db *gorm.DB) *gorm.DB {
		return activeMusic(db).Order("year desc")
	})
}

type MusicCategoryDAO struct {
	table[model.MusicCategory]
}

// WatchAll streams every category ordered by name.
func (d *MusicCategoryDAO) WatchAll(ctx context.Context) (<-chan []model.MusicCategory, error) {
	return d.watch(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Order("name")
	})
}
