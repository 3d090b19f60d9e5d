package identity

import (
	"context"
	"testing"
	"time"

	"github.com/Luismorlan/choirmux/remote"
	"github.com/Luismorlan/choirmux/stream"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestProvider(t *testing.T) *MemoryProvider {
	bus := stream.NewBus()
	t.Cleanup(func() { bus.Close() })
	p := NewMemoryProvider(bus)
	p.SetHashCost(bcrypt.MinCost)
	return p
}

func TestSignUpSignIn(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)

	created, err := p.SignUp(ctx, "soprano@choir.org", "hallelujah")
	require.NoError(t, err)
	assert.NotEmpty(t, created.Uid)

	current, ok := p.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, created, current)

	require.NoError(t, p.SignOut(ctx))
	_, ok = p.CurrentUser()
	assert.False(t, ok)

	_, err = p.SignIn(ctx, "soprano@choir.org", "wrong password")
	assert.True(t, errors.Is(err, remote.ErrInvalidCredentials))
	_, err = p.SignIn(ctx, "tenor@choir.org", "hallelujah")
	assert.True(t, errors.Is(err, remote.ErrInvalidCredentials))

	signedIn, err := p.SignIn(ctx, "soprano@choir.org", "hallelujah")
	require.NoError(t, err)
	assert.Equal(t, created, signedIn)
}

func TestSignUpRejectsDuplicateAndWeakPassword(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)

	_, err := p.SignUp(ctx, "bass@choir.org", "123")
	assert.True(t, errors.Is(err, remote.ErrWeakPassword))

	_, err = p.SignUp(ctx, "bass@choir.org", "123456")
	require.NoError(t, err)
	_, err = p.SignUp(ctx, "bass@choir.org", "654321")
	assert.True(t, errors.Is(err, remote.ErrEmailTaken))
}

func TestPasswordReset(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)

	err := p.SendPasswordResetEmail(ctx, "nobody@choir.org")
	assert.True(t, errors.Is(err, remote.ErrAccountNotFound))

	_, err = p.SignUp(ctx, "alto@choir.org", "magnificat")
	require.NoError(t, err)
	require.NoError(t, p.SendPasswordResetEmail(ctx, "alto@choir.org"))
	assert.Equal(t, []string{"alto@choir.org"}, p.ResetRequests())
}

func TestAuthStateChanges(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p := newTestProvider(t)

	changes, err := p.AuthStateChanges(ctx)
	require.NoError(t, err)

	wait := func(ok func(*remote.AuthUser) bool) {
		t.Helper()
		timeout := time.After(3 * time.Second)
		for {
			select {
			case u := <-changes:
				if ok(u) {
					return
				}
			case <-timeout:
				t.Fatal("timed out waiting for auth state")
			}
		}
	}

	wait(func(u *remote.AuthUser) bool { return u == nil })
	user, err := p.SignUp(ctx, "tenor@choir.org", "gloria!")
	require.NoError(t, err)
	wait(func(u *remote.AuthUser) bool { return u != nil && u.Uid == user.Uid })
	require.NoError(t, p.SignOut(ctx))
	wait(func(u *remote.AuthUser) bool { return u == nil })
}
