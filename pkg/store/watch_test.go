package store

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestThrottleCoalescesBurst(t *testing.T) {
	th := newKeyThrottle(10 * time.Millisecond)
	defer th.Stop()

	var mu sync.Mutex
	var got []Event
	send := func(ev Event) {
		mu.Lock()
		got = append(got, ev)
		mu.Unlock()
	}

	for i := 0; i < 10; i++ {
		th.Enqueue(Event{Key: KeyTasks}, send)
	}
	th.Enqueue(Event{Key: KeyEvents}, send)

	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 2 {
		t.Fatalf("events = %d, want 2 coalesced keys: %+v", len(got), got)
	}
}

func TestThrottleStopCancelsPendingFlush(t *testing.T) {
	th := newKeyThrottle(10 * time.Millisecond)

	var fired atomic.Bool
	th.Enqueue(Event{Key: KeyTasks}, func(Event) { fired.Store(true) })
	th.Stop()

	time.Sleep(50 * time.Millisecond)
	if fired.Load() {
		t.Fatal("flush fired after stop")
	}
	th.Enqueue(Event{Key: KeyTasks}, func(Event) { fired.Store(true) })
	time.Sleep(50 * time.Millisecond)
	if fired.Load() {
		t.Fatal("enqueue after stop rearmed the timer")
	}
}

// Once Stop returns the channel owner may close it, so no flush may call
// send afterwards, even one that was already running when Stop was called.
func TestThrottleStopIsSendBarrier(t *testing.T) {
	for i := 0; i < 200; i++ {
		th := newKeyThrottle(time.Millisecond)

		var afterStop atomic.Bool
		var leaked atomic.Bool
		th.Enqueue(Event{Key: KeyTasks}, func(Event) {
			if afterStop.Load() {
				leaked.Store(true)
			}
		})

		// Land Stop near the flush boundary.
		time.Sleep(time.Millisecond)
		th.Stop()
		afterStop.Store(true)

		if leaked.Load() {
			t.Fatal("send observed after Stop returned")
		}
	}
}
