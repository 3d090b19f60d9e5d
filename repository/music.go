package repository

import (
	"context"
	"io"

	"github.com/Luismorlan/choirmux/cache"
	"github.com/Luismorlan/choirmux/model"
	"github.com/Luismorlan/choirmux/remote"
)

const (
	MusicAudioDir     = "music/audio/"
	MusicThumbnailDir = "music/thumbnails/"
)

// MusicRepository manages the music library and its categories.
type MusicRepository struct {
	base
}

func NewMusicRepository(store *cache.Store, docs remote.DocumentStore, blobs remote.BlobStore) *MusicRepository {
	return &MusicRepository{newBase(store, docs, blobs)}
}

// AllMusic streams active music, newest upload first.
func (r *MusicRepository) AllMusic(ctx context.Context) (<-chan []model.Music, error) {
	return r.store.Music.WatchActive(ctx)
}

func (r *MusicRepository) MusicByCategory(ctx context.Context, category string) (<-chan []model.Music, error) {
	return r.store.Music.WatchByCategory(ctx, category)
}

func (r *MusicRepository) MusicByMonth(ctx context.Context, month string, year int) (<-chan []model.Music, error) {
	return r.store.Music.WatchByMonth(ctx, month, year)
}

// MusicByID also finds inactive music.
func (r *MusicRepository) MusicByID(ctx context.Context, id string) (model.Music, bool, error) {
	return r.store.Music.ByID(ctx, id)
}

// Categories streams the distinct category names of active music. These are
// free text and may differ from AllMusicCategories.
func (r *MusicRepository) Categories(ctx context.Context) (<-chan []string, error) {
	return r.store.Music.WatchCategories(ctx)
}

func (r *MusicRepository) MonthsByYear(ctx context.Context, year int) (<-chan []string, error) {
	return r.store.Music.WatchMonthsByYear(ctx, year)
}

func (r *MusicRepository) Years(ctx context.Context) (<-chan []int, error) {
	return r.store.Music.WatchYears(ctx)
}

func (r *MusicRepository) AllMusicCategories(ctx context.Context) (<-chan []model.MusicCategory, error) {
	return r.store.MusicCategories.WatchAll(ctx)
}

func (r *MusicRepository) InsertMusic(ctx context.Context, music model.Music) error {
	return write[model.Music](ctx, r.base, r.store.Music, music.Id, music)
}

func (r *MusicRepository) UpdateMusic(ctx context.Context, music model.Music) error {
	return write[model.Music](ctx, r.base, r.store.Music, music.Id, music)
}

func (r *MusicRepository) DeleteMusic(ctx context.Context, id string) error {
	return remove[model.Music](ctx, r.base, r.store.Music, id)
}

// SetMusicActive hides or shows a music in lists. Unknown ids are ignored.
func (r *MusicRepository) SetMusicActive(ctx context.Context, id string, isActive bool) error {
	return modify[model.Music](ctx, r.base, r.store.Music, id, func(m *model.Music) {
		m.IsActive = isActive
	})
}

func (r *MusicRepository) InsertCategory(ctx context.Context, category model.MusicCategory) error {
	return write[model.MusicCategory](ctx, r.base, r.store.MusicCategories, category.Id, category)
}

func (r *MusicRepository) UpdateCategory(ctx context.Context, category model.MusicCategory) error {
	return write[model.MusicCategory](ctx, r.base, r.store.MusicCategories, category.Id, category)
}

func (r *MusicRepository) DeleteCategory(ctx context.Context, id string) error {
	return remove[model.MusicCategory](ctx, r.base, r.store.MusicCategories, id)
}

// UploadAudioFile stores audio under music/audio/ and returns its URL.
func (r *MusicRepository) UploadAudioFile(ctx context.Context, fileName string, body io.Reader, contentType string) (string, error) {
	return r.upload(ctx, MusicAudioDir, fileName, body, contentType)
}

func (r *MusicRepository) UploadThumbnailImage(ctx context.Context, fileName string, body io.Reader, contentType string) (string, error) {
	return r.upload(ctx, MusicThumbnailDir, fileName, body, contentType)
}
