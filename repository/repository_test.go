package repository

import (
	"testing"
	"time"

	"github.com/Luismorlan/choirmux/cache"
	"github.com/Luismorlan/choirmux/remote/blobstore"
	"github.com/Luismorlan/choirmux/remote/docstore"
	"github.com/Luismorlan/choirmux/remote/identity"
	"github.com/Luismorlan/choirmux/stream"
	"github.com/Luismorlan/choirmux/utils"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testBlobUrl = "memory://blobs/"

// fixture wires every repository onto a temp sqlite cache and in memory
// remote collaborators.
type fixture struct {
	store    *cache.Store
	docs     *docstore.MemoryStore
	blobs    *blobstore.MemoryStore
	provider *identity.MemoryProvider

	music  *MusicRepository
	news   *NewsRepository
	social *SocialRepository
	themes *ThemeRepository
	users  *UserRepository
	auth   *AuthRepository
}

func newFixture(t *testing.T) *fixture {
	db, _ := utils.CreateTempDB(t)
	bus := stream.NewBus()
	t.Cleanup(func() { bus.Close() })

	store := cache.NewStore(db, bus)
	docs := docstore.NewMemoryStore()
	blobs := blobstore.NewMemoryStore(testBlobUrl)
	provider := identity.NewMemoryProvider(bus)
	provider.SetHashCost(bcrypt.MinCost)

	return &fixture{
		store:    store,
		docs:     docs,
		blobs:    blobs,
		provider: provider,
		music:    NewMusicRepository(store, docs, blobs),
		news:     NewNewsRepository(store, docs, blobs),
		social:   NewSocialRepository(store, docs, blobs),
		themes:   NewThemeRepository(store, docs, blobs),
		users:    NewUserRepository(store, docs, blobs),
		auth:     NewAuthRepository(store, docs, provider),
	}
}

// next waits for the first value on ch satisfying ok.
func next[T any](t *testing.T, ch <-chan T, ok func(T) bool) T {
	t.Helper()
	timeout := time.After(3 * time.Second)
	for {
		select {
		case v, open := <-ch:
			require.True(t, open, "stream closed")
			if ok(v) {
				return v
			}
		case <-timeout:
			require.FailNow(t, "timed out waiting for stream value")
		}
	}
}

// always accepts the first value.
func always[T any](T) bool {
	return true
}
