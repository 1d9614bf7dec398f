package panel

import "sync"

// updateQueue is a thread-safe FIFO of pending dirty events.
//
// An event already waiting in the queue is not added again, so a burst of
// notifications for one channel costs a single refresh. The signal channel
// is buffered with size 1 and coalesces wakeups the same way.
type updateQueue struct {
	mu      sync.Mutex
	events  []DirtyEvent
	pending map[DirtyEvent]struct{}
	closed  bool
	signal  chan struct{}
}

func newUpdateQueue() *updateQueue {
	return &updateQueue{
		events:  make([]DirtyEvent, 0, 16),
		pending: make(map[DirtyEvent]struct{}),
		signal:  make(chan struct{}, 1),
	}
}

// Enqueue adds e unless it is already pending.
// Returns false if e was coalesced or the queue is closed.
func (q *updateQueue) Enqueue(e DirtyEvent) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}
	if _, ok := q.pending[e]; ok {
		return false
	}

	q.pending[e] = struct{}{}
	q.events = append(q.events, e)

	select {
	case q.signal <- struct{}{}:
	default:
	}
	return true
}

// Drain removes and returns every pending event in arrival order.
func (q *updateQueue) Drain() []DirtyEvent {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]DirtyEvent, 0, cap(out))
	clear(q.pending)
	return out
}

// Wait returns a channel that signals when events may be available.
// The channel is closed by Close.
func (q *updateQueue) Wait() <-chan struct{} {
	return q.signal
}

// Len returns the number of pending events.
func (q *updateQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Close stops accepting events and wakes any waiter.
func (q *updateQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	close(q.signal)
}
