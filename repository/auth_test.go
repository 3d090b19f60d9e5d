package repository

import (
	"context"
	"testing"

	"github.com/Luismorlan/choirmux/model"
	"github.com/Luismorlan/choirmux/remote"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUpThenSignIn(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created, err := f.auth.SignUp(ctx, "alto@choir.org", "magnificat", "Anna", "")
	require.NoError(t, err)
	assert.Equal(t, model.UserRoleUser, created.Role)
	assert.True(t, f.docs.Has("users", created.Id))

	require.NoError(t, f.auth.SignOut(ctx))
	_, found, err := f.auth.CurrentUser(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	user, err := f.auth.SignIn(ctx, "alto@choir.org", "magnificat")
	require.NoError(t, err)
	assert.Equal(t, "Anna", user.Name)
	assert.Equal(t, model.UserRoleUser, user.Role)
	assert.Equal(t, created.Id, user.Id)
	assert.False(t, user.LastLoginAt.Before(created.LastLoginAt))

	current, found, err := f.auth.CurrentUser(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, created.Id, current.Id)
}

func TestSignUpAsAdmin(t *testing.T) {
	f := newFixture(t)
	user, err := f.auth.SignUp(context.Background(), "director@choir.org", "fortissimo", "Director", model.UserRoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, model.UserRoleAdmin, user.Role)
}

func TestSignInWithoutProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created, err := f.auth.SignUp(ctx, "tenor@choir.org", "gloria!", "Tom", model.UserRoleUser)
	require.NoError(t, err)
	require.NoError(t, f.docs.Delete(ctx, "users", created.Id))

	_, err = f.auth.SignIn(ctx, "tenor@choir.org", "gloria!")
	assert.Equal(t, ErrUserDataNotFound, err)
	assert.EqualError(t, err, "user data not found")
}

func TestSignInWrongPassword(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.auth.SignUp(ctx, "soprano@choir.org", "hallelujah", "Sue", "")
	require.NoError(t, err)
	_, err = f.auth.SignIn(ctx, "soprano@choir.org", "wrong")
	assert.True(t, errors.Is(err, remote.ErrInvalidCredentials))
}

func TestResetPasswordAndUpdateProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	user, err := f.auth.SignUp(ctx, "bass@choir.org", "basso profundo", "Ben", "")
	require.NoError(t, err)
	require.NoError(t, f.auth.ResetPassword(ctx, "bass@choir.org"))
	assert.Equal(t, []string{"bass@choir.org"}, f.provider.ResetRequests())
	assert.Error(t, f.auth.ResetPassword(ctx, "nobody@choir.org"))

	user.Bio = "Sings low"
	require.NoError(t, f.auth.UpdateUserProfile(ctx, user))
	var remoteUser model.User
	_, err = f.docs.Get(ctx, "users", user.Id, &remoteUser)
	require.NoError(t, err)
	assert.Equal(t, "Sings low", remoteUser.Bio)
	cached, _, err := f.users.UserByID(ctx, user.Id)
	require.NoError(t, err)
	assert.Equal(t, "Sings low", cached.Bio)
}

func TestCurrentUserChanges(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f := newFixture(t)

	user, err := f.auth.SignUp(ctx, "mezzo@choir.org", "allegretto", "Mia", "")
	require.NoError(t, err)
	require.NoError(t, f.auth.SignOut(ctx))

	changes, err := f.auth.CurrentUserChanges(ctx)
	require.NoError(t, err)
	next(t, changes, func(u *model.User) bool { return u == nil })

	_, err = f.auth.SignIn(ctx, "mezzo@choir.org", "allegretto")
	require.NoError(t, err)
	signedIn := next(t, changes, func(u *model.User) bool { return u != nil })
	assert.Equal(t, user.Id, signedIn.Id)
	assert.Equal(t, "Mia", signedIn.Name)

	require.NoError(t, f.auth.SignOut(ctx))
	next(t, changes, func(u *model.User) bool { return u == nil })
}

// replayProvider delivers scripted auth events while holding no session.
type replayProvider struct {
	remote.IdentityProvider
	events chan *remote.AuthUser
}

func (p *replayProvider) CurrentUser() (remote.AuthUser, bool) {
	return remote.AuthUser{}, false
}

func (p *replayProvider) AuthStateChanges(ctx context.Context) (<-chan *remote.AuthUser, error) {
	return p.events, nil
}

func TestCurrentUserChangesLoadsProfileOfEvent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f := newFixture(t)

	user, err := f.auth.SignUp(ctx, "tenor@choir.org", "crescendo", "Theo", "")
	require.NoError(t, err)
	require.NoError(t, f.auth.SignOut(ctx))

	provider := &replayProvider{IdentityProvider: f.provider, events: make(chan *remote.AuthUser, 1)}
	auth := NewAuthRepository(f.store, f.docs, provider)
	changes, err := auth.CurrentUserChanges(ctx)
	require.NoError(t, err)

	// The session is already gone when the sign in event is handled.
	provider.events <- &remote.AuthUser{Uid: user.Id, Email: user.Email}
	got := next(t, changes, always[*model.User])
	require.NotNil(t, got)
	assert.Equal(t, user.Id, got.Id)
	assert.Equal(t, "Theo", got.Name)

	provider.events <- nil
	assert.Nil(t, next(t, changes, always[*model.User]))
}
