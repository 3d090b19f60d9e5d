package docstore

import (
	"context"
	"errors"
	"testing"

	"github.com/Luismorlan/choirmux/model"
	"github.com/Luismorlan/choirmux/remote"
	"github.com/Luismorlan/choirmux/utils"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoundTrip(t *testing.T, store remote.DocumentStore) {
	ctx := context.Background()

	news := model.NewNews()
	news.Title = "Concert on Sunday"
	news.Priority = model.NewsPriorityUrgent
	news.Links = append(news.Links, model.NewsLink{Id: "l1", NewsId: news.Id, Url: "https://choir.org"})

	var got model.News
	found, err := store.Get(ctx, "news", news.Id, &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "news", news.Id, news))
	found, err = store.Get(ctx, "news", news.Id, &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Empty(t, cmp.Diff(news, got, cmpopts.EquateEmpty()))

	news.Title = "Concert moved to Monday"
	require.NoError(t, store.Set(ctx, "news", news.Id, news))
	got = model.News{}
	_, err = store.Get(ctx, "news", news.Id, &got)
	require.NoError(t, err)
	assert.Equal(t, "Concert moved to Monday", got.Title)

	// Same id in another collection is another document.
	found, err = store.Get(ctx, "music", news.Id, &model.Music{})
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Delete(ctx, "news", news.Id))
	found, err = store.Get(ctx, "news", news.Id, &got)
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting again is fine.
	require.NoError(t, store.Delete(ctx, "news", news.Id))
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	testRoundTrip(t, NewMemoryStore())
}

func TestGormStoreRoundTrip(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	store, err := NewGormStore(db)
	require.NoError(t, err)
	testRoundTrip(t, store)
}

func TestMemoryStoreFailureInjection(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	boom := errors.New("network unreachable")

	store.FailOn(OpSet, boom)
	assert.Equal(t, boom, store.Set(ctx, "users", "u1", model.NewUser()))
	assert.False(t, store.Has("users", "u1"))

	store.FailOn(OpSet, nil)
	require.NoError(t, store.Set(ctx, "users", "u1", model.NewUser()))
	assert.True(t, store.Has("users", "u1"))

	store.FailOn(OpDelete, boom)
	assert.Equal(t, boom, store.Delete(ctx, "users", "u1"))
	assert.True(t, store.Has("users", "u1"))
}
