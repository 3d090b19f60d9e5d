package repository

import (
	"context"
	"testing"

	"github.com/Luismorlan/choirmux/model"
	"github.com/Luismorlan/choirmux/remote/docstore"
	"github.com/Luismorlan/choirmux/stream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle(t *testing.T) {
	likes := []string{"a", "b"}
	added := toggle(likes, "c")
	assert.Equal(t, []string{"a", "b", "c"}, added)
	assert.Equal(t, []string{"a", "b"}, likes)
	assert.Equal(t, []string{"a", "b"}, toggle(added, "c"))
	assert.Equal(t, []string{"b"}, toggle(likes, "a"))
	assert.Equal(t, []string{"x"}, toggle(nil, "x"))
}

func TestRemoteFailureLeavesCacheUntouched(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.docs.FailOn(docstore.OpSet, errors.New("network unreachable"))
	music := model.NewMusic()
	err := f.music.InsertMusic(ctx, music)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "network unreachable")
	var mirrorErr *MirrorError
	assert.False(t, errors.As(err, &mirrorErr))

	_, found, err := f.music.MusicByID(ctx, music.Id)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRemoteDeleteFailureKeepsCachedRow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	music := model.NewMusic()
	require.NoError(t, f.music.InsertMusic(ctx, music))
	f.docs.FailOn(docstore.OpDelete, errors.New("permission denied"))
	require.Error(t, f.music.DeleteMusic(ctx, music.Id))

	_, found, err := f.music.MusicByID(ctx, music.Id)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestMirrorFailureIsReported(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.store.DB().Migrator().DropTable(&model.Music{}))

	music := model.NewMusic()
	err := f.music.InsertMusic(ctx, music)
	var mirrorErr *MirrorError
	require.True(t, errors.As(err, &mirrorErr))
	assert.Equal(t, "music", mirrorErr.Collection)
	assert.Equal(t, music.Id, mirrorErr.Id)
	// The remote write already happened.
	assert.True(t, f.docs.Has("music", music.Id))
}

func TestSyncOutcomePublished(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f := newFixture(t)

	messages, err := f.store.Bus().Subscribe(ctx, stream.TOPIC_SYNC_OUTCOME)
	require.NoError(t, err)

	category := model.NewMusicCategory()
	require.NoError(t, f.music.InsertCategory(ctx, category))

	msg := next(t, messages, always[*message.Message])
	msg.Ack()
	outcome, err := stream.ParseOutcome(msg.Payload)
	require.NoError(t, err)
	assert.Equal(t, stream.SyncOutcome{
		Collection: "music_categories",
		Id:         category.Id,
		Op:         stream.SyncOpWrite,
		Remote:     true,
		Success:    true,
	}, outcome)
}
