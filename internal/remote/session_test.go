package remote

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navjivan/navjivan-backend/internal/app/model"
	"github.com/navjivan/navjivan-backend/pkg/util"
)

// flakyAuth fails the first failUntil login attempts, then succeeds.
type flakyAuth struct {
	attempts  atomic.Int32
	failUntil atomic.Int32
}

func (f *flakyAuth) Login(email, password string) (*model.User, *util.TokenPair, error) {
	n := f.attempts.Add(1)
	if n <= f.failUntil.Load() {
		return nil, nil, errors.New("connection refused")
	}
	return &model.User{ID: 7, Email: email},
		&util.TokenPair{AccessToken: "token-" + email}, nil
}

func (f *flakyAuth) Logout(ctx context.Context, token string) error { return nil }

func (f *flakyAuth) GetUserByID(id uint) (*model.User, error) {
	return &model.User{ID: id}, nil
}

func TestServiceSessionResolve(t *testing.T) {
	ss := NewServiceSession(&flakyAuth{}, "admin@example.com", "secret", time.Hour)
	defer ss.Close()

	session, err := ss.Resolve(context.Background())
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, uint(7), session.UserID)
	assert.Equal(t, "token-admin@example.com", session.Token)
}

func TestServiceSessionResolveWithoutCredentials(t *testing.T) {
	ss := NewServiceSession(&flakyAuth{}, "", "", time.Hour)
	defer ss.Close()

	session, err := ss.Resolve(context.Background())
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestServiceSessionRecoversAfterFailedSignIn(t *testing.T) {
	auth := &flakyAuth{}
	auth.failUntil.Store(1)
	ss := NewServiceSession(auth, "admin@example.com", "secret", time.Millisecond)
	ss.minRenew = 10 * time.Millisecond
	defer ss.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, unsubscribe := ss.Subscribe()
	defer unsubscribe()

	// Backend down at boot: the error surfaces but renewal keeps going
	session, err := ss.Resolve(ctx)
	require.Error(t, err)
	assert.Nil(t, session)

	select {
	case renewed := <-ch:
		require.NotNil(t, renewed)
		assert.Equal(t, "token-admin@example.com", renewed.Token)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a renewed session after the backend recovered")
	}
}

func TestServiceSessionFailedRenewalEmitsAnonymous(t *testing.T) {
	// Succeeds at resolve time, then every renewal fails
	auth := &flakyAuth{}
	ss := NewServiceSession(auth, "admin@example.com", "secret", time.Millisecond)
	ss.minRenew = 10 * time.Millisecond
	defer ss.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	session, err := ss.Resolve(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)

	auth.failUntil.Store(1 << 30)

	ch, unsubscribe := ss.Subscribe()
	defer unsubscribe()

	// A renewal that was already in flight may still succeed; the next
	// one fails and emits nil
	deadline := time.After(2 * time.Second)
	for {
		select {
		case renewed := <-ch:
			if renewed == nil {
				return
			}
		case <-deadline:
			t.Fatal("expected an anonymous emission after renewal failed")
		}
	}
}
