package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Luismorlan/choirmux/model"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f := newFixture(t)

	admin := model.NewUser()
	admin.Email, admin.Name, admin.Role = "director@choir.org", "Director", model.UserRoleAdmin
	member := model.NewUser()
	member.Email, member.Name = "bass@choir.org", "Bass"
	member.UploadedImages = model.StringList{"https://cdn/1.png"}
	require.NoError(t, f.users.SaveUser(ctx, admin))
	require.NoError(t, f.users.SaveUser(ctx, member))

	got, found, err := f.users.UserByID(ctx, member.Id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Empty(t, cmp.Diff(member, got, cmpopts.EquateEmpty()))

	got, found, err = f.users.UserByEmail(ctx, "director@choir.org")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, admin.Id, got.Id)

	all, err := f.users.Users(ctx)
	require.NoError(t, err)
	next(t, all, func(us []model.User) bool { return len(us) == 2 })

	admins, err := f.users.UsersByRole(ctx, model.UserRoleAdmin)
	require.NoError(t, err)
	next(t, admins, func(us []model.User) bool { return len(us) == 1 && us[0].Id == admin.Id })

	active, err := f.users.ActiveUsers(ctx)
	require.NoError(t, err)
	next(t, active, func(us []model.User) bool { return len(us) == 2 })
	require.NoError(t, f.users.SetUserActive(ctx, member.Id, false))
	next(t, active, func(us []model.User) bool { return len(us) == 1 })

	before := time.Now()
	require.NoError(t, f.users.RecordLogin(ctx, admin.Id))
	got, _, err = f.users.UserByID(ctx, admin.Id)
	require.NoError(t, err)
	assert.False(t, got.LastLoginAt.Before(before))

	require.NoError(t, f.users.DeleteUser(ctx, member.Id))
	_, found, err = f.users.UserByID(ctx, member.Id)
	require.NoError(t, err)
	assert.False(t, found)
}
