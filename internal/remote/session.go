package remote

import (
	"context"
	"sync"
	"time"

	"github.com/navjivan/navjivan-backend/internal/app/service"
	"github.com/navjivan/navjivan-backend/internal/store"
	"github.com/navjivan/navjivan-backend/pkg/logger"
)

// ServiceSession keeps the store signed in as the service account. Resolve
// performs the initial sign-in; a background loop renews the token before
// it expires and emits the fresh session to subscribers. When no
// credentials are configured the session resolves to anonymous and stays
// there.
type ServiceSession struct {
	auth         service.AuthService
	email        string
	password     string
	accessExpiry time.Duration
	minRenew     time.Duration

	mu     sync.Mutex
	subs   map[int]chan *store.Session
	nextID int
	closed bool
}

func NewServiceSession(auth service.AuthService, email, password string, accessExpiry time.Duration) *ServiceSession {
	return &ServiceSession{
		auth:         auth,
		email:        email,
		password:     password,
		accessExpiry: accessExpiry,
		minRenew:     time.Minute,
		subs:         make(map[int]chan *store.Session),
	}
}

func (s *ServiceSession) Resolve(ctx context.Context) (*store.Session, error) {
	if s.email == "" || s.password == "" {
		return nil, nil
	}

	// The renew loop starts regardless of the first sign-in outcome, so a
	// backend that was down at boot still authenticates on a later tick.
	session, err := s.signIn()
	go s.renewLoop(ctx)
	return session, err
}

func (s *ServiceSession) Subscribe() (<-chan *store.Session, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan *store.Session, 4)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Close stops emitting and closes all subscriber channels.
func (s *ServiceSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}

func (s *ServiceSession) signIn() (*store.Session, error) {
	user, tokens, err := s.auth.Login(s.email, s.password)
	if err != nil {
		return nil, err
	}
	return &store.Session{
		UserID: user.ID,
		Email:  user.Email,
		Token:  tokens.AccessToken,
	}, nil
}

// renewLoop re-signs in at 80% of the token lifetime. A failed renewal
// drops the session to anonymous and keeps retrying.
func (s *ServiceSession) renewLoop(ctx context.Context) {
	interval := s.accessExpiry * 4 / 5
	if interval < s.minRenew {
		interval = s.minRenew
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			session, err := s.signIn()
			if err != nil {
				logger.Error("Service session renewal failed", err, map[string]interface{}{
					"email": s.email,
				})
			}
			s.emit(session)
		}
	}
}

func (s *ServiceSession) emit(session *store.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	for _, ch := range s.subs {
		select {
		case ch <- session:
		default:
		}
	}
}
