package queue

import (
	"strings"
	"testing"

	"github.com/uskr/wdclient/internal/wdevent"
)

func button(id string) wdevent.Event {
	return wdevent.New("Button", "Press", []wdevent.Param{{"Id", id}}, wdevent.DefaultUCF(), nil)
}

func TestSerializeAndClearEmptiesQueue(t *testing.T) {
	q := New()
	q.Add(button("B1"))
	q.Add(button("B2"))

	_ = q.SerializeAndClear()

	if got := q.Len(); got != 0 {
		t.Fatalf("Len() after SerializeAndClear = %d, want 0", got)
	}
}

func TestSerializeJoinsPerEventSegmentsWithPipe(t *testing.T) {
	q := New()
	events := []wdevent.Event{button("B1"), button("B2"), button("B3")}
	for _, e := range events {
		q.Add(e)
	}

	got := q.SerializeAndClear()

	wantParts := make([]string, len(events))
	for i, e := range events {
		wantParts[i] = e.Serialize()
	}
	want := strings.Join(wantParts, "|")
	if got != want {
		t.Fatalf("SerializeAndClear() = %q, want %q", got, want)
	}
}

func TestSerializeEmptyQueue(t *testing.T) {
	q := New()
	if got := q.SerializeAndClear(); got != "" {
		t.Fatalf("SerializeAndClear() on empty queue = %q, want empty string", got)
	}
}
