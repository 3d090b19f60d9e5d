package repository

import (
	"context"
	"time"

	"github.com/Luismorlan/choirmux/cache"
	"github.com/Luismorlan/choirmux/model"
	"github.com/Luismorlan/choirmux/remote"
	Logger "github.com/Luismorlan/choirmux/utils/log"
	"github.com/pkg/errors"
)

// AuthRepository signs users in and out against the identity provider and
// keeps their profile documents in the users collection.
type AuthRepository struct {
	base
	provider remote.IdentityProvider
}

func NewAuthRepository(store *cache.Store, docs remote.DocumentStore, provider remote.IdentityProvider) *AuthRepository {
	return &AuthRepository{base: newBase(store, docs, nil), provider: provider}
}

// SignUp creates the account, then writes a fresh profile keyed by the
// provider issued id. An empty role defaults to USER.
func (r *AuthRepository) SignUp(ctx context.Context, email, password, name string, role model.UserRole) (model.User, error) {
	account, err := r.provider.SignUp(ctx, email, password)
	if err != nil {
		return model.User{}, errors.Wrap(err, "sign up")
	}
	if account.Uid == "" {
		return model.User{}, ErrAuthenticationFailed
	}
	if role == "" {
		role = model.UserRoleUser
	}

	now := time.Now()
	user := model.NewUser()
	user.Id = account.Uid
	user.Email = email
	user.Name = name
	user.Role = role
	user.CreatedAt = now
	user.LastLoginAt = now
	if err := write[model.User](ctx, r.base, r.store.Users, user.Id, user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// SignIn authenticates, then loads the profile from the document store and
// records the login. Valid credentials without a profile document yield
// ErrUserDataNotFound.
func (r *AuthRepository) SignIn(ctx context.Context, email, password string) (model.User, error) {
	account, err := r.provider.SignIn(ctx, email, password)
	if err != nil {
		return model.User{}, errors.Wrap(err, "sign in")
	}
	if account.Uid == "" {
		return model.User{}, ErrAuthenticationFailed
	}

	user, found, err := r.fetchProfile(ctx, account.Uid)
	if err != nil {
		return model.User{}, err
	}
	if !found {
		return model.User{}, ErrUserDataNotFound
	}
	user.LastLoginAt = time.Now()
	if err := write[model.User](ctx, r.base, r.store.Users, user.Id, user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (r *AuthRepository) SignOut(ctx context.Context) error {
	return r.provider.SignOut(ctx)
}

func (r *AuthRepository) ResetPassword(ctx context.Context, email string) error {
	return errors.Wrap(r.provider.SendPasswordResetEmail(ctx, email), "reset password")
}

// CurrentUser returns the profile of the signed in account. The cache is
// read first, the document store only when the profile isn't cached yet.
func (r *AuthRepository) CurrentUser(ctx context.Context) (model.User, bool, error) {
	account, ok := r.provider.CurrentUser()
	if !ok {
		return model.User{}, false, nil
	}
	return r.profile(ctx, account.Uid)
}

func (r *AuthRepository) profile(ctx context.Context, uid string) (model.User, bool, error) {
	user, found, err := r.store.Users.ByID(ctx, uid)
	if err != nil || found {
		return user, found, err
	}
	return r.fetchProfile(ctx, uid)
}

// UpdateUserProfile writes the whole profile.
func (r *AuthRepository) UpdateUserProfile(ctx context.Context, user model.User) error {
	return write[model.User](ctx, r.base, r.store.Users, user.Id, user)
}

// CurrentUserChanges streams the signed in profile after every sign in and
// sign out, nil while signed out or when the profile can't be loaded. The
// profile is looked up by the account carried by the event, not by whatever
// session the provider holds by the time it is handled.
func (r *AuthRepository) CurrentUserChanges(ctx context.Context) (<-chan *model.User, error) {
	states, err := r.provider.AuthStateChanges(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan *model.User)
	go func() {
		defer close(out)
		for account := range states {
			var current *model.User
			if account != nil {
				user, found, err := r.profile(ctx, account.Uid)
				if err != nil {
					Logger.Log.WithError(err).Errorf("fail to load profile of %s", account.Uid)
				} else if found {
					current = &user
				}
			}
			select {
			case out <- current:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func (r *AuthRepository) fetchProfile(ctx context.Context, uid string) (model.User, bool, error) {
	var user model.User
	found, err := r.docs.Get(ctx, r.store.Users.Name(), uid, &user)
	if err != nil {
		return model.User{}, false, errors.Wrapf(err, "get %s", remote.DocumentKey(r.store.Users.Name(), uid))
	}
	return user, found, nil
}
