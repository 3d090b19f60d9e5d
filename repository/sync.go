package repository

import (
	"context"
	"fmt"
	"io"

	"github.com/Luismorlan/choirmux/cache"
	"github.com/Luismorlan/choirmux/remote"
	"github.com/Luismorlan/choirmux/stream"
	"github.com/Luismorlan/choirmux/utils"
	Logger "github.com/Luismorlan/choirmux/utils/log"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	// ErrUserDataNotFound is returned by sign in when the credentials are
	// valid but the profile document is missing.
	ErrUserDataNotFound = errors.New("user data not found")
	// ErrAuthenticationFailed is returned when the identity provider accepts
	// the call but yields no account.
	ErrAuthenticationFailed = errors.New("authentication failed")
)

// MirrorError is returned when the document store accepted a change but
// the cache could not apply it. Remote state has already changed, the cache
// is stale until the next successful write.
type MirrorError struct {
	Collection string
	Id         string
	Err        error
}

func (e *MirrorError) Error() string {
	return fmt.Sprintf("remote %s/%s changed but cache mirror failed: %v", e.Collection, e.Id, e.Err)
}

func (e *MirrorError) Unwrap() error {
	return e.Err
}

func (e *MirrorError) Cause() error {
	return e.Err
}

// mirror is the part of a cache DAO the write pattern needs.
type mirror[T any] interface {
	Name() string
	ByID(ctx context.Context, id string) (T, bool, error)
	Upsert(ctx context.Context, row T) error
	Delete(ctx context.Context, row T) error
}

// base holds the collaborators shared by every repository.
type base struct {
	store *cache.Store
	docs  remote.DocumentStore
	blobs remote.BlobStore
	bus   *stream.Bus
}

func newBase(store *cache.Store, docs remote.DocumentStore, blobs remote.BlobStore) base {
	return base{store: store, docs: docs, blobs: blobs, bus: store.Bus()}
}

func (b base) report(outcome stream.SyncOutcome, err error) {
	outcome.Success = err == nil
	if err != nil {
		outcome.Message = err.Error()
		Logger.Log.WithFields(logrus.Fields{
			"collection": outcome.Collection,
			"id":         outcome.Id,
			"op":         outcome.Op,
		}).WithError(err).Warn("sync failed")
	}
	b.bus.PublishOutcome(outcome)
}

// write stores row remotely, then mirrors it into the cache. A remote failure
// leaves the cache untouched, a cache failure yields a *MirrorError.
func write[T any](ctx context.Context, b base, m mirror[T], id string, row T) (err error) {
	outcome := stream.SyncOutcome{Collection: m.Name(), Id: id, Op: stream.SyncOpWrite}
	defer func() { b.report(outcome, err) }()

	if err := b.docs.Set(ctx, m.Name(), id, row); err != nil {
		return errors.Wrapf(err, "set %s", remote.DocumentKey(m.Name(), id))
	}
	outcome.Remote = true
	if err := m.Upsert(ctx, row); err != nil {
		return &MirrorError{Collection: m.Name(), Id: id, Err: err}
	}
	return nil
}

// remove deletes the document remotely, then drops the cached row if there
// is one. A row already missing from the cache is not an error.
func remove[T any](ctx context.Context, b base, m mirror[T], id string) (err error) {
	outcome := stream.SyncOutcome{Collection: m.Name(), Id: id, Op: stream.SyncOpDelete}
	defer func() { b.report(outcome, err) }()

	if err := b.docs.Delete(ctx, m.Name(), id); err != nil {
		return errors.Wrapf(err, "delete %s", remote.DocumentKey(m.Name(), id))
	}
	outcome.Remote = true
	row, found, err := m.ByID(ctx, id)
	if err != nil {
		return &MirrorError{Collection: m.Name(), Id: id, Err: err}
	}
	if !found {
		return nil
	}
	if err := m.Delete(ctx, row); err != nil {
		return &MirrorError{Collection: m.Name(), Id: id, Err: err}
	}
	return nil
}

// modify applies change to a copy of the cached row and writes it back. A row
// missing from the cache is a no-op.
func modify[T any](ctx context.Context, b base, m mirror[T], id string, change func(*T)) error {
	row, found, err := m.ByID(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	change(&row)
	return write(ctx, b, m, id, row)
}

// upload stores a blob under dir and returns its URL.
func (b base) upload(ctx context.Context, dir, fileName string, body io.Reader, contentType string) (string, error) {
	if fileName == "" {
		return "", errors.New("file name is empty")
	}
	url, err := b.blobs.Upload(ctx, dir+fileName, body, contentType)
	if err != nil {
		return "", errors.Wrapf(err, "upload %s%s", dir, fileName)
	}
	return url, nil
}

// toggle removes id from list if present, otherwise appends it. The input
// is never modified.
func toggle(list []string, id string) []string {
	if utils.Contains(list, id) {
		return utils.Without(list, id)
	}
	return append(append(make([]string, 0, len(list)+1), list...), id)
}
