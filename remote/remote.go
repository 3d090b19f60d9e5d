// Package remote declares the cloud collaborators the repositories write
// through: a keyed document store, a blob store and an identity provider.
// Implementations live in the sub packages.
package remote

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

var (
	// ErrNotSignedIn is returned by identity operations that need a session.
	ErrNotSignedIn = errors.New("not signed in")
	// ErrInvalidCredentials is returned when email and password don't match.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when signing up with a registered email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrAccountNotFound is returned when no account uses the given email.
	ErrAccountNotFound = errors.New("no account for email")
	// ErrWeakPassword is returned by sign up for passwords that are too short.
	ErrWeakPassword = errors.New("password should be at least 6 characters")
)

// DocumentStore is the source of truth. Documents are the JSON encoding of
// an entity, keyed by collection and id.
type DocumentStore interface {
	// Set creates or fully replaces a document.
	Set(ctx context.Context, collection, id string, doc interface{}) error
	// Get decodes the document into out. found is false if it doesn't exist.
	Get(ctx context.Context, collection, id string, out interface{}) (found bool, err error)
	// Delete removes a document. Deleting a missing document is not an error.
	Delete(ctx context.Context, collection, id string) error
}

// BlobStore stores binary content under a path and returns a durable URL to
// retrieve it.
type BlobStore interface {
	Upload(ctx context.Context, path string, body io.Reader, contentType string) (url string, err error)
}

// AuthUser is the identity of a signed in account.
type AuthUser struct {
	Uid   string `json:"uid"`
	Email string `json:"email"`
}

// IdentityProvider handles email / password accounts. A provider holds at
// most one session at a time.
type IdentityProvider interface {
	SignUp(ctx context.Context, email, password string) (AuthUser, error)
	SignIn(ctx context.Context, email, password string) (AuthUser, error)
	SignOut(ctx context.Context) error
	SendPasswordResetEmail(ctx context.Context, email string) error
	// CurrentUser returns the signed in account, ok is false when signed out.
	CurrentUser() (user AuthUser, ok bool)
	// AuthStateChanges emits the current account right away and again on
	// every sign in or sign out, nil meaning signed out.
	AuthStateChanges(ctx context.Context) (<-chan *AuthUser, error)
}

// DocumentKey is the canonical "collection/id" path of a document.
func DocumentKey(collection, id string) string {
	return collection + "/" + id
}
