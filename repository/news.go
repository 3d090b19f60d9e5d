package repository

import (
	"context"
	"io"
	"time"

	"github.com/Luismorlan/choirmux/cache"
	"github.com/Luismorlan/choirmux/model"
	"github.com/Luismorlan/choirmux/remote"
)

const (
	NewsImageDir = "news_images/"
	NewsFileDir  = "news_files/"
)

// NewsRepository manages the news board and the files and links attached
// to each news.
type NewsRepository struct {
	base
}

func NewNewsRepository(store *cache.Store, docs remote.DocumentStore, blobs remote.BlobStore) *NewsRepository {
	return &NewsRepository{newBase(store, docs, blobs)}
}

func (r *NewsRepository) PublishedNews(ctx context.Context) (<-chan []model.News, error) {
	return r.store.News.WatchPublished(ctx)
}

func (r *NewsRepository) NewsByCategory(ctx context.Context, category string) (<-chan []model.News, error) {
	return r.store.News.WatchByCategory(ctx, category)
}

func (r *NewsRepository) NewsByID(ctx context.Context, id string) (model.News, bool, error) {
	return r.store.News.ByID(ctx, id)
}

// AllNews streams every news including drafts, for the admin board.
func (r *NewsRepository) AllNews(ctx context.Context) (<-chan []model.News, error) {
	return r.store.News.WatchAll(ctx)
}

func (r *NewsRepository) DraftNews(ctx context.Context) (<-chan []model.News, error) {
	return r.store.News.WatchDrafts(ctx)
}

func (r *NewsRepository) FilesByNews(ctx context.Context, newsId string) (<-chan []model.NewsFile, error) {
	return r.store.NewsFiles.WatchByNews(ctx, newsId)
}

func (r *NewsRepository) LinksByNews(ctx context.Context, newsId string) (<-chan []model.NewsLink, error) {
	return r.store.NewsLinks.WatchByNews(ctx, newsId)
}

func (r *NewsRepository) CreateNews(ctx context.Context, news model.News) error {
	return write[model.News](ctx, r.base, r.store.News, news.Id, news)
}

func (r *NewsRepository) UpdateNews(ctx context.Context, news model.News) error {
	return write[model.News](ctx, r.base, r.store.News, news.Id, news)
}

func (r *NewsRepository) DeleteNews(ctx context.Context, id string) error {
	return remove[model.News](ctx, r.base, r.store.News, id)
}

// PublishNews marks a cached news published as of now. Unknown ids are
// ignored.
func (r *NewsRepository) PublishNews(ctx context.Context, id string) error {
	return modify[model.News](ctx, r.base, r.store.News, id, func(n *model.News) {
		n.IsPublished = true
		n.PublishedAt = time.Now()
	})
}

// UnpublishNews turns a news back into a draft, PublishedAt is kept.
func (r *NewsRepository) UnpublishNews(ctx context.Context, id string) error {
	return modify[model.News](ctx, r.base, r.store.News, id, func(n *model.News) {
		n.IsPublished = false
	})
}

func (r *NewsRepository) AddFile(ctx context.Context, file model.NewsFile) error {
	return write[model.NewsFile](ctx, r.base, r.store.NewsFiles, file.Id, file)
}

func (r *NewsRepository) UpdateFile(ctx context.Context, file model.NewsFile) error {
	return write[model.NewsFile](ctx, r.base, r.store.NewsFiles, file.Id, file)
}

func (r *NewsRepository) DeleteFile(ctx context.Context, id string) error {
	return remove[model.NewsFile](ctx, r.base, r.store.NewsFiles, id)
}

func (r *NewsRepository) AddLink(ctx context.Context, link model.NewsLink) error {
	return write[model.NewsLink](ctx, r.base, r.store.NewsLinks, link.Id, link)
}

func (r *NewsRepository) UpdateLink(ctx context.Context, link model.NewsLink) error {
	return write[model.NewsLink](ctx, r.base, r.store.NewsLinks, link.Id, link)
}

func (r *NewsRepository) DeleteLink(ctx context.Context, id string) error {
	return remove[model.NewsLink](ctx, r.base, r.store.NewsLinks, id)
}

func (r *NewsRepository) UploadNewsImage(ctx context.Context, fileName string, body io.Reader, contentType string) (string, error) {
	return r.upload(ctx, NewsImageDir, fileName, body, contentType)
}

func (r *NewsRepository) UploadNewsFile(ctx context.Context, fileName string, body io.Reader, contentType string) (string, error) {
	return r.upload(ctx, NewsFileDir, fileName, body, contentType)
}
