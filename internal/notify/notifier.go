package notify

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/navjivan/navjivan-backend/pkg/logger"
	"github.com/navjivan/navjivan-backend/pkg/redis"
)

// Event describes a change in a tracked content table. Consumers never
// patch incrementally; an event only means "refresh everything".
type Event struct {
	Table string
}

// Notifier fans content change events out to in-process subscribers and,
// when the redis bridge is running, to every other instance.
type Notifier struct {
	mu         sync.RWMutex
	subs       map[int]chan Event
	nextID     int
	closed     bool
	instanceID string
}

func NewNotifier() *Notifier {
	return &Notifier{
		subs:       make(map[int]chan Event),
		instanceID: uuid.NewString(),
	}
}

// Publish delivers an event to all local subscribers and publishes it to
// the cross-instance channel. Slow subscribers are skipped rather than
// blocking the writer; a dropped event costs one redundant refresh at most.
func (n *Notifier) Publish(ctx context.Context, ev Event) {
	n.mu.RLock()
	for _, ch := range n.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	n.mu.RUnlock()

	// Best-effort cross-instance fanout; Publish already logged on failure.
	_ = redis.PublishContentChange(ctx, n.instanceID+"|"+ev.Table)
}

// Subscribe registers a listener. The returned cancel func must be called
// to release it; the channel closes afterwards.
func (n *Notifier) Subscribe() (<-chan Event, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		ch := make(chan Event)
		close(ch)
		return ch, func() {}
	}

	id := n.nextID
	n.nextID++
	ch := make(chan Event, 16)
	n.subs[id] = ch

	cancel := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if existing, ok := n.subs[id]; ok {
			delete(n.subs, id)
			close(existing)
		}
	}
	return ch, cancel
}

// Close closes every subscriber channel.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	n.closed = true
	for id, ch := range n.subs {
		delete(n.subs, id)
		close(ch)
	}
}

// RunRedisBridge republishes change events from other instances to local
// subscribers. It blocks until ctx is cancelled; run it in a goroutine.
// Messages published by this instance are skipped to avoid an echo.
func (n *Notifier) RunRedisBridge(ctx context.Context) {
	pubsub := redis.SubscribeContentChanges(ctx)
	if pubsub == nil {
		return
	}
	defer pubsub.Close()

	logger.Info("Content change redis bridge started", nil)

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			origin, table, found := strings.Cut(msg.Payload, "|")
			if !found || origin == n.instanceID {
				continue
			}
			n.mu.RLock()
			for _, sub := range n.subs {
				select {
				case sub <- Event{Table: table}:
				default:
				}
			}
			n.mu.RUnlock()
		}
	}
}
