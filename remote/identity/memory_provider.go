package identity

import (
	"context"
	"sync"

	"github.com/Luismorlan/choirmux/remote"
	"github.com/Luismorlan/choirmux/stream"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type account struct {
	uid  string
	hash []byte
}

// MemoryProvider is an in process identity provider for tests and local
// development. Passwords are kept as bcrypt hashes.
type MemoryProvider struct {
	*session

	mu       sync.RWMutex
	accounts map[string]account
	resets   []string
	cost     int
}

func NewMemoryProvider(bus *stream.Bus) *MemoryProvider {
	return &MemoryProvider{
		session:  newSession(bus),
		accounts: make(map[string]account),
		cost:     bcrypt.DefaultCost,
	}
}

// SetHashCost overrides the bcrypt cost, tests use bcrypt.MinCost.
func (p *MemoryProvider) SetHashCost(cost int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cost = cost
}

// SignUp creates the account and signs it in.
func (p *MemoryProvider) SignUp(ctx context.Context, email, password string) (remote.AuthUser, error) {
	if len(password) < minPasswordLength {
		return remote.AuthUser{}, remote.ErrWeakPassword
	}

	p.mu.Lock()
	if _, ok := p.accounts[email]; ok {
		p.mu.Unlock()
		return remote.AuthUser{}, errors.Wrap(remote.ErrEmailTaken, email)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		p.mu.Unlock()
		return remote.AuthUser{}, errors.Wrap(err, "hash password")
	}
	user := remote.AuthUser{Uid: uuid.New().String(), Email: email}
	p.accounts[email] = account{uid: user.Uid, hash: hash}
	p.mu.Unlock()

	p.set(&user)
	return user, nil
}

func (p *MemoryProvider) SignIn(ctx context.Context, email, password string) (remote.AuthUser, error) {
	p.mu.RLock()
	acc, ok := p.accounts[email]
	p.mu.RUnlock()
	if !ok {
		return remote.AuthUser{}, remote.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acc.hash, []byte(password)); err != nil {
		return remote.AuthUser{}, remote.ErrInvalidCredentials
	}

	user := remote.AuthUser{Uid: acc.uid, Email: email}
	p.set(&user)
	return user, nil
}

func (p *MemoryProvider) SignOut(ctx context.Context) error {
	p.set(nil)
	return nil
}

// SendPasswordResetEmail records the request, no mail is sent.
func (p *MemoryProvider) SendPasswordResetEmail(ctx context.Context, email string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.accounts[email]; !ok {
		return errors.Wrap(remote.ErrAccountNotFound, email)
	}
	p.resets = append(p.resets, email)
	return nil
}

// ResetRequests returns the emails a password reset was requested for.
func (p *MemoryProvider) ResetRequests() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]string(nil), p.resets...)
}
