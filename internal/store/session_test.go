package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessions struct {
	resolved   *Session
	resolveErr error
	ch         chan *Session
}

func newFakeSessions(resolved *Session, err error) *fakeSessions {
	return &fakeSessions{resolved: resolved, resolveErr: err, ch: make(chan *Session, 4)}
}

func (f *fakeSessions) Resolve(ctx context.Context) (*Session, error) {
	return f.resolved, f.resolveErr
}

func (f *fakeSessions) Subscribe() (<-chan *Session, func()) {
	return f.ch, func() {}
}

func sessionTestStore(sessions SessionSource) *Store {
	return New(Backend{
		Reader:   seededReader(),
		Writer:   &fakeWriter{},
		Objects:  &fakeObjects{},
		Sessions: sessions,
	}, Options{DebounceWindow: 20 * time.Millisecond})
}

func TestSessionStartsResolving(t *testing.T) {
	s := sessionTestStore(newFakeSessions(nil, nil))
	assert.Equal(t, StateResolving, s.State())
	assert.Nil(t, s.Session())
}

func TestSessionResolvesAuthenticated(t *testing.T) {
	sessions := newFakeSessions(&Session{UserID: 7, Email: "admin@example.com", Token: "tok"}, nil)
	s := sessionTestStore(sessions)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)
	defer s.Close()

	assert.Equal(t, StateAuthenticated, s.State())
	require.NotNil(t, s.Session())
	assert.Equal(t, uint(7), s.Session().UserID)
}

func TestSessionResolvesAnonymousWithoutCredentials(t *testing.T) {
	s := sessionTestStore(newFakeSessions(nil, nil))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)
	defer s.Close()

	assert.Equal(t, StateAnonymous, s.State())
	assert.Nil(t, s.Session())
}

func TestSessionResolveErrorSettlesAnonymous(t *testing.T) {
	s := sessionTestStore(newFakeSessions(nil, errors.New("auth backend down")))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)
	defer s.Close()

	// An error never leaves the store stuck in resolving
	assert.Equal(t, StateAnonymous, s.State())
}

func TestSessionTransitionsNeverReturnToResolving(t *testing.T) {
	sessions := newFakeSessions(&Session{UserID: 7, Email: "admin@example.com"}, nil)
	s := sessionTestStore(sessions)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)
	defer s.Close()

	// Sign-out
	sessions.ch <- nil
	assert.Eventually(t, func() bool {
		return s.State() == StateAnonymous
	}, time.Second, 5*time.Millisecond)

	// Sign-in again
	sessions.ch <- &Session{UserID: 9, Email: "other@example.com"}
	assert.Eventually(t, func() bool {
		return s.State() == StateAuthenticated && s.Session() != nil && s.Session().UserID == 9
	}, time.Second, 5*time.Millisecond)
}

func TestNoSessionSourceMeansAnonymous(t *testing.T) {
	s := newTestStore(seededReader(), &fakeWriter{}, &fakeObjects{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)
	defer s.Close()

	assert.Equal(t, StateAnonymous, s.State())
}
