package picker

import (
	"strconv"
	"sync"
	"sync/atomic"
)

// Target identifies what a pointer or keyboard interaction landed on.
type Target any

var targetSeq atomic.Uint64

// NewTargetID returns an interaction target id for one widget part. Ids
// are unique within the process, so pickers sharing a Document never claim
// each other's interactions.
func NewTargetID(part string) string {
	return part + "#" + strconv.FormatUint(targetSeq.Add(1), 10)
}

// Owner is implemented by collaborators that can claim an interaction
// target as part of the widget.
type Owner interface {
	Owns(Target) bool
}

// Document is the registry of outside-interaction listeners shared by
// every open picker. Listeners are told about each interaction and decide
// for themselves whether it happened outside their widget.
type Document struct {
	mu sync.Mutex
	h  Handlers[Target]
}

func NewDocument() *Document { return &Document{} }

// DefaultDocument is used when Options.Document is nil.
var DefaultDocument = NewDocument()

// Listen registers fn for every Dispatch until the handle is released.
func (d *Document) Listen(fn func(Target)) Subscription {
	d.mu.Lock()
	sub := d.h.Add(fn)
	d.mu.Unlock()
	return SubscriptionFunc(func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		sub.Unsubscribe()
	})
}

// Dispatch reports an interaction on target to every listener. Listeners
// may release their own handles while being called.
func (d *Document) Dispatch(target Target) {
	d.mu.Lock()
	ids := append([]int(nil), d.h.order...)
	d.mu.Unlock()
	for _, id := range ids {
		d.mu.Lock()
		fn, ok := d.h.fns[id]
		d.mu.Unlock()
		if ok {
			fn(target)
		}
	}
}

// Listeners returns the number of registered listeners.
func (d *Document) Listeners() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.h.Len()
}
