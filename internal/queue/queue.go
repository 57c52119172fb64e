// Package queue implements the EventQueue from spec.md §3: an ordered
// buffer of wdevent.Event with add/clear/serialize semantics. Serialized
// events join with "|"; the queue is emptied by the same call that reads
// it, so no caller can observe a half-sent queue.
package queue

import (
	"strings"
	"sync"

	"github.com/uskr/wdclient/internal/wdevent"
)

// Queue is not safe for concurrent use across goroutines beyond the
// single mutex it holds internally — per spec.md §5, only one logical
// flow drives a client's queue at a time; the mutex exists to make
// Add/SerializeAndClear atomic with respect to each other, not to permit
// parallel dispatch.
type Queue struct {
	mu     sync.Mutex
	events []wdevent.Event
}

// New returns an empty Queue.
func New() *Queue {
	return &Queue{}
}

// Add appends an event to the end of the queue.
func (q *Queue) Add(e wdevent.Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, e)
}

// Clear empties the queue without serializing it.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = nil
}

// Len reports the number of buffered events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// SerializeAndClear renders the buffered events into the single
// SAPEVENTQUEUE string and empties the queue in the same call, so the
// queue can never be observed mid-flight (spec.md §5).
func (q *Queue) SerializeAndClear() string {
	q.mu.Lock()
	defer q.mu.Unlock()
	segments := make([]string, len(q.events))
	for i, e := range q.events {
		segments[i] = e.Serialize()
	}
	q.events = nil
	return strings.Join(segments, "|")
}
