package picker

import "testing"

func TestHandlers_UnsubscribeIsIdempotent(t *testing.T) {
	var h Handlers[int]
	var got []int
	sub := h.Add(func(v int) { got = append(got, v) })
	h.Add(func(v int) { got = append(got, v*10) })
	h.Emit(1)
	sub.Unsubscribe()
	sub.Unsubscribe()
	h.Emit(2)
	if len(got) != 3 || got[0] != 1 || got[1] != 10 || got[2] != 20 {
		t.Fatalf("unexpected dispatch %v", got)
	}
	if h.Len() != 1 {
		t.Fatalf("expected one handler left, got %d", h.Len())
	}
}

func TestHandlers_RemoveDuringEmit(t *testing.T) {
	var h Handlers[string]
	calls := 0
	var second Subscription
	h.Add(func(string) {
		calls++
		second.Unsubscribe()
	})
	second = h.Add(func(string) { calls++ })
	h.Emit("x")
	if calls != 1 {
		t.Fatalf("handler removed during dispatch must be skipped, calls=%d", calls)
	}
}

func TestDocument_ListenerMayReleaseItself(t *testing.T) {
	d := NewDocument()
	var seen []Target
	var sub Subscription
	sub = d.Listen(func(target Target) {
		seen = append(seen, target)
		sub.Unsubscribe()
	})
	d.Listen(func(target Target) { seen = append(seen, target) })
	d.Dispatch("a")
	d.Dispatch("b")
	if len(seen) != 3 {
		t.Fatalf("unexpected deliveries %v", seen)
	}
	if d.Listeners() != 1 {
		t.Fatalf("expected one listener, got %d", d.Listeners())
	}
}
