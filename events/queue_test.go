package events

import (
	"sync"
	"testing"
)

func TestQueueFIFOOrder(t *testing.T) {
	q := NewQueue()
	q.Push(ShellEvent{Kind: ShellBell})
	q.Push(ShellEvent{Kind: ShellCommandFail, Code: 2})
	q.Push(ShellEvent{Kind: ShellTitleChanged, Title: "vim"})

	got := q.Consume()
	if len(got) != 3 {
		t.Fatalf("consumed %d events, want 3", len(got))
	}
	if got[0].Kind != ShellBell || got[1].Kind != ShellCommandFail || got[2].Kind != ShellTitleChanged {
		t.Errorf("events out of order: %+v", got)
	}
	if got[1].Code != 2 || got[2].Title != "vim" {
		t.Errorf("event payloads lost: %+v", got)
	}
}

func TestQueueConsumeEmpty(t *testing.T) {
	q := NewQueue()
	if got := q.Consume(); got != nil {
		t.Errorf("empty consume = %v, want nil", got)
	}

	q.Push(ShellEvent{Kind: ShellBell})
	q.Consume()
	if got := q.Consume(); got != nil {
		t.Errorf("second consume = %v, want nil", got)
	}
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewQueue()
	for i := 0; i < QueueSize+10; i++ {
		q.Push(ShellEvent{Kind: ShellCommandFail, Code: i})
	}

	got := q.Consume()
	if len(got) != QueueSize {
		t.Fatalf("consumed %d events, want %d", len(got), QueueSize)
	}
	// The 10 oldest were overwritten
	if got[0].Code != 10 {
		t.Errorf("oldest surviving code = %d, want 10", got[0].Code)
	}
	if got[len(got)-1].Code != QueueSize+9 {
		t.Errorf("newest code = %d, want %d", got[len(got)-1].Code, QueueSize+9)
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue()
	const producers = 8
	const perProducer = 16

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(ShellEvent{Kind: ShellBell})
			}
		}()
	}
	wg.Wait()

	total := 0
	for {
		batch := q.Consume()
		if batch == nil {
			break
		}
		total += len(batch)
	}
	if total != producers*perProducer {
		t.Errorf("consumed %d events, want %d", total, producers*perProducer)
	}
}
