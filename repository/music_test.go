package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Luismorlan/choirmux/model"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMusicWriteReadDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	music := model.NewMusic()
	music.Title = "Ave Verum Corpus"
	music.Artist = "Mozart"
	music.Category = "Hymn"
	music.Month, music.Year = "May", 2024
	music.Duration = 185000
	require.NoError(t, f.music.InsertMusic(ctx, music))

	got, found, err := f.music.MusicByID(ctx, music.Id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Empty(t, cmp.Diff(music, got))

	music.Lyrics = "Ave verum corpus natum"
	require.NoError(t, f.music.UpdateMusic(ctx, music))
	got, _, err = f.music.MusicByID(ctx, music.Id)
	require.NoError(t, err)
	assert.Equal(t, music.Lyrics, got.Lyrics)

	require.NoError(t, f.music.DeleteMusic(ctx, music.Id))
	_, found, err = f.music.MusicByID(ctx, music.Id)
	require.NoError(t, err)
	assert.False(t, found)
	assert.False(t, f.docs.Has("music", music.Id))

	// Deleting again is still a success.
	require.NoError(t, f.music.DeleteMusic(ctx, music.Id))
}

func TestMusicStreams(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f := newFixture(t)

	all, err := f.music.AllMusic(ctx)
	require.NoError(t, err)
	next(t, all, func(m []model.Music) bool { return len(m) == 0 })

	hymn := model.NewMusic()
	hymn.Category, hymn.Month, hymn.Year = "Hymn", "March", 2024
	hymn.UploadedAt = time.Now().Add(-time.Minute)
	gospel := model.NewMusic()
	gospel.Category, gospel.Month, gospel.Year = "Gospel", "April", 2023
	require.NoError(t, f.music.InsertMusic(ctx, hymn))
	require.NoError(t, f.music.InsertMusic(ctx, gospel))

	snapshot := next(t, all, func(m []model.Music) bool { return len(m) == 2 })
	assert.Equal(t, gospel.Id, snapshot[0].Id)

	byCategory, err := f.music.MusicByCategory(ctx, "Hymn")
	require.NoError(t, err)
	snapshot = next(t, byCategory, always[[]model.Music])
	require.Len(t, snapshot, 1)
	assert.Equal(t, hymn.Id, snapshot[0].Id)

	byMonth, err := f.music.MusicByMonth(ctx, "April", 2023)
	require.NoError(t, err)
	snapshot = next(t, byMonth, always[[]model.Music])
	require.Len(t, snapshot, 1)
	assert.Equal(t, gospel.Id, snapshot[0].Id)

	years, err := f.music.Years(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{2024, 2023}, next(t, years, always[[]int]))

	require.NoError(t, f.music.SetMusicActive(ctx, gospel.Id, false))
	snapshot = next(t, all, func(m []model.Music) bool { return len(m) == 1 })
	assert.Equal(t, hymn.Id, snapshot[0].Id)
	categories, err := f.music.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hymn"}, next(t, categories, always[[]string]))

	// The remote document follows.
	var remote model.Music
	_, err = f.docs.Get(ctx, "music", gospel.Id, &remote)
	require.NoError(t, err)
	assert.False(t, remote.IsActive)

	// Unknown ids are ignored.
	require.NoError(t, f.music.SetMusicActive(ctx, "missing", true))
}

func TestMusicCategories(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f := newFixture(t)

	choral := model.NewMusicCategory()
	choral.Name = "Choral"
	anthem := model.NewMusicCategory()
	anthem.Name = "Anthem"
	require.NoError(t, f.music.InsertCategory(ctx, choral))
	require.NoError(t, f.music.InsertCategory(ctx, anthem))

	categories, err := f.music.AllMusicCategories(ctx)
	require.NoError(t, err)
	snapshot := next(t, categories, func(c []model.MusicCategory) bool { return len(c) == 2 })
	assert.Equal(t, "Anthem", snapshot[0].Name)
	assert.Empty(t, cmp.Diff(choral, snapshot[1], cmpopts.EquateEmpty()))

	anthem.Color = "#FF0000"
	require.NoError(t, f.music.UpdateCategory(ctx, anthem))
	require.NoError(t, f.music.DeleteCategory(ctx, choral.Id))
	snapshot = next(t, categories, func(c []model.MusicCategory) bool { return len(c) == 1 })
	assert.Equal(t, "#FF0000", snapshot[0].Color)
}

func TestMusicUploads(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	url, err := f.music.UploadAudioFile(ctx, "ave.mp3", strings.NewReader("audio"), "audio/mpeg")
	require.NoError(t, err)
	assert.Equal(t, testBlobUrl+"music/audio/ave.mp3", url)

	url, err = f.music.UploadThumbnailImage(ctx, "ave.png", strings.NewReader("png"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, testBlobUrl+"music/thumbnails/ave.png", url)

	_, err = f.music.UploadAudioFile(ctx, "", strings.NewReader(""), "")
	assert.Error(t, err)
}
