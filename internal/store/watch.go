package store

import (
	"context"
	"time"
)

// Start performs the initial full refresh, resolves the session, and then
// watches the change feed and session source in the background. It blocks
// until the first refresh has settled so callers see loaded content.
func (s *Store) Start(ctx context.Context) {
	s.RefreshAll(ctx)
	s.resolveSession(ctx)

	if s.backend.Feed != nil {
		s.wg.Add(1)
		go s.watchChanges(ctx)
	}
	if s.backend.Sessions != nil {
		s.wg.Add(1)
		go s.watchSessions(ctx)
	}
}

// Close stops the background watchers. Safe to call more than once.
func (s *Store) Close() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
	s.wg.Wait()
}

// watchChanges debounces change events: a burst of notifications within the
// debounce window collapses into a single full refresh after the window
// goes quiet.
func (s *Store) watchChanges(ctx context.Context) {
	defer s.wg.Done()

	events, cancel := s.backend.Feed.Subscribe()
	defer cancel()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-s.stop:
			return
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			s.log().Debug("content change notification received", map[string]interface{}{
				"table": ev.Table,
			})
			if timer == nil {
				timer = time.NewTimer(s.opts.DebounceWindow)
				fire = timer.C
			} else {
				if !timer.Stop() {
					<-timer.C
				}
				timer.Reset(s.opts.DebounceWindow)
			}
		case <-fire:
			timer = nil
			fire = nil
			s.RefreshAll(ctx)
		}
	}
}

// watchSessions applies sign-in and sign-out transitions after the initial
// resolution. The state never returns to resolving.
func (s *Store) watchSessions(ctx context.Context) {
	defer s.wg.Done()

	sessions, cancel := s.backend.Sessions.Subscribe()
	defer cancel()

	for {
		select {
		case <-s.stop:
			return
		case <-ctx.Done():
			return
		case session, ok := <-sessions:
			if !ok {
				return
			}
			s.applySession(session)
		}
	}
}
