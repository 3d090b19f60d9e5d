package seed

import (
	"context"
	"testing"
	"time"

	"github.com/Luismorlan/choirmux/cache"
	"github.com/Luismorlan/choirmux/model"
	"github.com/Luismorlan/choirmux/remote/blobstore"
	"github.com/Luismorlan/choirmux/remote/docstore"
	"github.com/Luismorlan/choirmux/repository"
	"github.com/Luismorlan/choirmux/stream"
	"github.com/Luismorlan/choirmux/utils"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func first[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(3 * time.Second):
		require.FailNow(t, "timed out waiting for snapshot")
	}
	panic("unreachable")
}

func TestSeedDefaultFixture(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, _ := utils.CreateTempDB(t)
	bus := stream.NewBus()
	defer bus.Close()
	store := cache.NewStore(db, bus)
	docs := docstore.NewMemoryStore()
	blobs := blobstore.NewMemoryStore("memory://")
	s := &Seeder{
		Music:  repository.NewMusicRepository(store, docs, blobs),
		Themes: repository.NewThemeRepository(store, docs, blobs),
	}

	f, err := ParseFixture("data/default_seed.yaml")
	require.NoError(t, err)
	require.Len(t, f.Categories, 3)

	require.NoError(t, s.Seed(ctx, f))
	// Seeding is idempotent.
	require.NoError(t, s.Seed(ctx, f))

	categories, err := s.Music.AllMusicCategories(ctx)
	require.NoError(t, err)
	names := []string{}
	for _, c := range first(t, categories) {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Christmas", "Gospel", "Hymns"}, names)
	assert.True(t, docs.Has("music_categories", "hymns"))

	active, err := s.Themes.ActiveTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "classic", active.Id)
	assert.Equal(t, model.DefaultTheme().PrimaryColor, active.PrimaryColor)

	evening, found, err := s.Themes.ThemeByID(ctx, "evening")
	require.NoError(t, err)
	require.True(t, found)
	assert.False(t, evening.IsActive)
	assert.Equal(t, "#121212", evening.BackgroundColor)

	elements, err := s.Themes.VisibleElements(ctx)
	require.NoError(t, err)
	visible := first(t, elements)
	require.Len(t, visible, 3)
	assert.Equal(t, "home-title", visible[0].Id)
	assert.Equal(t, model.UIElementTypeButton, visible[2].Type)
}

func TestSeedRejectsUnknownElementType(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	bus := stream.NewBus()
	defer bus.Close()
	store := cache.NewStore(db, bus)
	docs := docstore.NewMemoryStore()
	s := &Seeder{
		Music:  repository.NewMusicRepository(store, docs, nil),
		Themes: repository.NewThemeRepository(store, docs, nil),
	}
	err := s.Seed(context.Background(), Fixture{Elements: []Element{{Id: "x", Type: "VIDEO"}}})
	assert.True(t, errors.Is(err, model.ErrUnknownEnum))
}
