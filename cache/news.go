package cache

import (
	"context"

	"github.com/Luismorlan/choirmux/model"
	"gorm.io/gorm"
)

type NewsDAO struct {
	table[model.News]
}

func publishedNews(db *gorm.DB) *gorm.DB {
	return db.Where("is_published = ? AND is_active = ?", true, true).Order("published_at desc")
}

// WatchPublished streams published, active news, latest publication first.
func (d *NewsDAO) WatchPublished(ctx context.Context) (<-chan []model.News, error) {
	return d.watch(ctx, publishedNews)
}

func (d *NewsDAO) WatchByCategory(ctx context.Context, category string) (<-chan []model.News, error) {
	return d.watch(ctx, func(db *gorm.DB) *gorm.DB {
		return publishedNews(db.Where("category = ?", category))
	})
}

// WatchAll streams every news including drafts and inactive ones, most
// recently edited first.
func (d *NewsDAO) WatchAll(ctx context.Context) (<-chan []model.News, error) {
	return d.watch(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Order("updated_at desc")
	})
}

func (d *NewsDAO) WatchDrafts(ctx context.Context) (<-chan []model.News, error) {
	return d.watch(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("is_published = ?", false).Order("updated_at desc")
	})
}

type NewsFileDAO struct {
	table[model.NewsFile]
}

func (d *NewsFileDAO) WatchByNews(ctx context.Context, newsId string) (<-chan []model.NewsFile, error) {
	return d.watch(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("news_id = ?", newsId).Order("name")
	})
}

type NewsLinkDAO struct {
	table[model.NewsLink]
}

func (d *NewsLinkDAO) WatchByNews(ctx context.Context, newsId string) (<-chan []model.NewsLink, error) {
	return d.watch(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("news_id = ?", newsId).Order("title")
	})
}
