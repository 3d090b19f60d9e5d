package identity

import (
	"context"
	"sync"

	"github.com/Luismorlan/choirmux/remote"
	"github.com/Luismorlan/choirmux/stream"
)

// session holds the signed in account of a provider and announces every
// change of it on the bus.
type session struct {
	mu   sync.RWMutex
	user *remote.AuthUser
	bus  *stream.Bus
}

func newSession(bus *stream.Bus) *session {
	return &session{bus: bus}
}

func (s *session) set(user *remote.AuthUser) {
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	s.bus.Notify(stream.TOPIC_AUTH_STATE)
}

func (s *session) CurrentUser() (remote.AuthUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return remote.AuthUser{}, false
	}
	return *s.user, true
}

func (s *session) AuthStateChanges(ctx context.Context) (<-chan *remote.AuthUser, error) {
	return stream.Watch(ctx, s.bus, stream.TOPIC_AUTH_STATE, func(context.Context) (*remote.AuthUser, error) {
		user, ok := s.CurrentUser()
		if !ok {
			return nil, nil
		}
		return &user, nil
	})
}
