package store

import "context"

// SessionState tracks where session resolution stands. The store starts in
// StateResolving and settles exactly once into one of the other two states;
// later session changes move between Authenticated and Anonymous but never
// back to Resolving.
type SessionState string

const (
	StateResolving     SessionState = "resolving"
	StateAuthenticated SessionState = "authenticated"
	StateAnonymous     SessionState = "anonymous"
)

// SessionState returns the current resolution state.
func (s *Store) State() SessionState {
	s.sessionMu.RLock()
	defer s.sessionMu.RUnlock()
	return s.sessionState
}

// Session returns a copy of the current session, or nil when anonymous or
// still resolving.
func (s *Store) Session() *Session {
	s.sessionMu.RLock()
	defer s.sessionMu.RUnlock()
	if s.session == nil {
		return nil
	}
	session := *s.session
	return &session
}

// resolveSession performs the one-time initial resolution. A resolution
// error settles to anonymous rather than leaving the store stuck resolving.
func (s *Store) resolveSession(ctx context.Context) {
	if s.backend.Sessions == nil {
		s.applySession(nil)
		return
	}

	session, err := s.backend.Sessions.Resolve(ctx)
	if err != nil {
		s.log().Error("session resolution failed, continuing anonymous", err)
		session = nil
	}
	s.applySession(session)
}

func (s *Store) applySession(session *Session) {
	s.sessionMu.Lock()
	s.session = session
	if session != nil {
		s.sessionState = StateAuthenticated
	} else {
		s.sessionState = StateAnonymous
	}
	s.sessionMu.Unlock()
}
