package events

import (
	"sync/atomic"
)

const (
	// QueueSize bounds pending shell events between ticks. Power of two
	// so indices wrap with a mask
	QueueSize = 256

	bufferMask = QueueSize - 1
)

// Queue hands shell events from their producers (PTY reader, focus
// watcher) to the render tick without locking. Producers race on the tail
// with CAS; the tick is the only consumer. When producers outrun the
// consumer by a full ring, the oldest unread events are dropped — a frame
// that is ten bells behind should render the newest state, not replay the
// backlog.
type Queue struct {
	events [QueueSize]ShellEvent
	// published marks slots whose event write has landed, so the consumer
	// never reads a half-written slot from a racing producer
	published [QueueSize]atomic.Bool
	head      atomic.Uint64
	tail      atomic.Uint64
}

func NewQueue() *Queue {
	q := &Queue{}
	q.head.Store(0)
	q.tail.Store(0)
	return q
}

// Push enqueues an event. Safe to call from any goroutine
func (q *Queue) Push(event ShellEvent) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & bufferMask

			q.events[idx] = event
			// the event write above has to land before the flag flips
			q.published[idx].Store(true)

			// lapped the consumer: drag head forward over the overwritten slot
			currentHead := q.head.Load()
			if nextTail-currentHead > QueueSize {
				q.head.CompareAndSwap(currentHead, nextTail-QueueSize)
			}
			return
		}
	}
}

// Consume drains every published event in arrival order. Only the render
// tick calls this; a nil return means an empty frame
func (q *Queue) Consume() []ShellEvent {
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > QueueSize {
			maxAvailable = QueueSize
			currentHead = currentTail - QueueSize
		}

		result := make([]ShellEvent, 0, maxAvailable)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & bufferMask

			// a producer claimed this slot but hasn't finished writing;
			// stop here and pick it up next tick
			if !q.published[idx].Load() {
				break
			}

			result = append(result, q.events[idx])
			q.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if q.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}
