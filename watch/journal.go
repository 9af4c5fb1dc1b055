package watch

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/guiguan/caster"
	"github.com/npillmayer/bintree"
)

// Slot denotes the child slot an edit applies to.
type Slot int

// Child slots of a node.
const (
	LeftSlot Slot = iota
	RightSlot
)

func (s Slot) String() string {
	if s == LeftSlot {
		return "left"
	}
	return "right"
}

// Edit describes a structural change of a tree: node Old in slot Slot of
// Parent has been replaced by New. Old or New may be nil.
type Edit[T any] struct {
	Slot   Slot
	Parent *bintree.Node[T]
	Old    *bintree.Node[T]
	New    *bintree.Node[T]
}

func (e Edit[T]) String() string {
	return fmt.Sprintf("edit[%s of %v: %v → %v]", e.Slot, e.Parent, e.Old, e.New)
}

// Journal performs edits on trees and broadcasts them to subscribers.
//
// Edits are carried out synchronously; publishing happens after the edit has
// been completed. Subscribers receive events in the order the edits happened.
//
// Edits never wait for slow subscribers. If a subscriber's channel is full,
// events for this subscriber are dropped and counted (see Dropped). Clients
// which need every event have to choose a capacity large enough for the
// bursts of edits they expect, and keep reading.
type Journal[T any] struct {
	cast    *caster.Caster
	dropped atomic.Uint64
}

// New creates a journal. The journal will be closed as soon as ctx is done.
// ctx may be nil.
func New[T any](ctx context.Context) *Journal[T] {
	return &Journal[T]{cast: caster.New(ctx)}
}

// Subscribe registers a new subscriber. Edit events are delivered on the
// returned channel, which has a buffer of the given capacity. The channel is
// closed when either ctx is done or the journal is closed.
// Subscribing to a closed journal returns ErrClosed.
func (j *Journal[T]) Subscribe(ctx context.Context, capacity uint) (<-chan Edit[T], error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if j.closed() {
		return nil, ErrClosed
	}
	// the caster hands out an already closed channel once it is done
	sub, ok := j.cast.Sub(ctx, capacity)
	if !ok || j.closed() {
		return nil, ErrClosed
	}
	events := make(chan Edit[T], capacity)
	go func() {
		defer close(events)
		for msg := range sub {
			e, ok := msg.(Edit[T])
			if !ok {
				continue
			}
			select {
			case events <- e:
			default:
				j.dropped.Add(1)
				tracer().Debugf("subscriber is lagging, dropping %v", e)
			}
		}
	}()
	return events, nil
}

// Close closes the journal and all subscriber channels. Close does not
// return before the journal has shut down; calling it more than once is
// harmless.
func (j *Journal[T]) Close() {
	j.cast.Close()
	<-j.cast.Done()
}

// Dropped returns the number of events which could not be delivered because
// a subscriber's channel was full.
func (j *Journal[T]) Dropped() uint64 {
	return j.dropped.Load()
}

func (j *Journal[T]) closed() bool {
	select {
	case <-j.cast.Done():
		return true
	default:
		return false
	}
}

// ReplaceLeft calls parent.ReplaceLeft(child) and publishes the edit.
// If child has been attached somewhere else, the node will detach it first;
// the journal then publishes the removal from its previous slot ahead of the
// replacement.
func (j *Journal[T]) ReplaceLeft(parent, child *bintree.Node[T]) *bintree.Node[T] {
	moved, hasMoved := departure(parent, LeftSlot, child)
	old := parent.ReplaceLeft(child)
	if hasMoved {
		j.publish(moved)
	}
	j.publish(Edit[T]{Slot: LeftSlot, Parent: parent, Old: old, New: child})
	return old
}

// ReplaceRight calls parent.ReplaceRight(child) and publishes the edit.
// Moving an attached child publishes its removal first, as for ReplaceLeft.
func (j *Journal[T]) ReplaceRight(parent, child *bintree.Node[T]) *bintree.Node[T] {
	moved, hasMoved := departure(parent, RightSlot, child)
	old := parent.ReplaceRight(child)
	if hasMoved {
		j.publish(moved)
	}
	j.publish(Edit[T]{Slot: RightSlot, Parent: parent, Old: old, New: child})
	return old
}

// departure describes the removal of child from its current slot, which
// happens implicitly if child is to be attached at slot of parent.
func departure[T any](parent *bintree.Node[T], slot Slot, child *bintree.Node[T]) (Edit[T], bool) {
	prev := child.Parent()
	if prev == nil {
		return Edit[T]{}, false
	}
	from := RightSlot
	if child.IsLeftChild() {
		from = LeftSlot
	}
	if prev == parent && from == slot {
		return Edit[T]{}, false // stays in place
	}
	return Edit[T]{Slot: from, Parent: prev, Old: child, New: nil}, true
}

// ReplaceLeftWithLeaf calls parent.ReplaceLeftWithLeaf(v) and publishes the edit.
func (j *Journal[T]) ReplaceLeftWithLeaf(parent *bintree.Node[T], v T) *bintree.Node[T] {
	return j.ReplaceLeft(parent, bintree.NewLeaf(v))
}

// ReplaceRightWithLeaf calls parent.ReplaceRightWithLeaf(v) and publishes the edit.
func (j *Journal[T]) ReplaceRightWithLeaf(parent *bintree.Node[T], v T) *bintree.Node[T] {
	return j.ReplaceRight(parent, bintree.NewLeaf(v))
}

// RemoveLeft calls parent.RemoveLeft() and publishes the edit.
func (j *Journal[T]) RemoveLeft(parent *bintree.Node[T]) *bintree.Node[T] {
	return j.ReplaceLeft(parent, nil)
}

// RemoveRight calls parent.RemoveRight() and publishes the edit.
func (j *Journal[T]) RemoveRight(parent *bintree.Node[T]) *bintree.Node[T] {
	return j.ReplaceRight(parent, nil)
}

func (j *Journal[T]) publish(e Edit[T]) {
	if e.Old == e.New {
		return // no change
	}
	if !j.cast.Pub(e) {
		tracer().Infof("journal closed, dropping %v", e)
	}
}
