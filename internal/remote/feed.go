package remote

import (
	"github.com/navjivan/navjivan-backend/internal/notify"
	"github.com/navjivan/navjivan-backend/internal/store"
)

// Feed adapts the change notifier to the store's change feed.
type Feed struct {
	notifier *notify.Notifier
}

func NewFeed(notifier *notify.Notifier) *Feed {
	return &Feed{notifier: notifier}
}

func (f *Feed) Subscribe() (<-chan store.Change, func()) {
	events, cancel := f.notifier.Subscribe()
	changes := make(chan store.Change, 16)

	go func() {
		defer close(changes)
		for ev := range events {
			select {
			case changes <- store.Change{Table: ev.Table}:
			default:
				// Slow subscriber: dropping is fine, any event
				// triggers the same full refresh.
			}
		}
	}()

	return changes, cancel
}
