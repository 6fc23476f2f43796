package picker

import "sync"

// EventKind names a controller notification.
type EventKind string

const (
	EventChange EventKind = "change"
	EventOpen   EventKind = "open"
	EventClose  EventKind = "close"
	EventError  EventKind = "error"
	EventDraw   EventKind = "draw"
)

// Event is delivered to subscribers. Err is set only for EventError.
type Event struct {
	Kind EventKind
	Err  *ParsingError
}

// Subscription is a handle on a registered callback.
type Subscription interface {
	Unsubscribe()
}

type onceSub struct {
	once sync.Once
	fn   func()
}

func (s *onceSub) Unsubscribe() { s.once.Do(s.fn) }

// SubscriptionFunc wraps fn so that only the first Unsubscribe runs it.
func SubscriptionFunc(fn func()) Subscription {
	return &onceSub{fn: fn}
}

// Handlers is an ordered callback list. It is not safe for concurrent use;
// collaborators call it from their own update loop.
type Handlers[T any] struct {
	next  int
	order []int
	fns   map[int]func(T)
}

// Add registers fn and returns a handle that removes it.
func (h *Handlers[T]) Add(fn func(T)) Subscription {
	if h.fns == nil {
		h.fns = map[int]func(T){}
	}
	id := h.next
	h.next++
	h.fns[id] = fn
	h.order = append(h.order, id)
	return SubscriptionFunc(func() { h.remove(id) })
}

func (h *Handlers[T]) remove(id int) {
	if _, ok := h.fns[id]; !ok {
		return
	}
	delete(h.fns, id)
	for i, v := range h.order {
		if v == id {
			h.order = append(h.order[:i:i], h.order[i+1:]...)
			break
		}
	}
}

// Emit calls every handler registered at the time of the call, in
// registration order. Handlers removed during dispatch are skipped.
func (h *Handlers[T]) Emit(v T) {
	ids := append([]int(nil), h.order...)
	for _, id := range ids {
		if fn, ok := h.fns[id]; ok {
			fn(v)
		}
	}
}

func (h *Handlers[T]) Len() int { return len(h.order) }

// Reset drops every handler.
func (h *Handlers[T]) Reset() {
	h.order = nil
	h.fns = nil
}

// Signal is a payload-free handler list for collaborator "changed" and
// "activated" callbacks.
type Signal struct {
	h Handlers[struct{}]
}

func (s *Signal) Add(fn func()) Subscription {
	return s.h.Add(func(struct{}) { fn() })
}

func (s *Signal) Emit() { s.h.Emit(struct{}{}) }

func (s *Signal) Len() int { return s.h.Len() }
