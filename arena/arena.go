package arena

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidID signals an id which does not denote a live node of the arena.
	ErrInvalidID = errors.New("arena: invalid node id")
	// ErrAttached signals an attempt to free a node which still has a parent.
	ErrAttached = errors.New("arena: node is attached to a parent")
	// ErrCycle signals an attempt to attach a node below itself.
	ErrCycle = errors.New("arena: attaching node would create a cycle")
	// ErrBrokenBackLink signals a child which does not refer back to its parent.
	ErrBrokenBackLink = errors.New("arena: child does not link back to its parent")
	// ErrFull signals that the arena has no more IDs to hand out.
	ErrFull = errors.New("arena: capacity exhausted")
)

// ID addresses a node within an Arena.
type ID int32

// None is the ID of an absent node.
const None ID = -1

// maxSlots is the size limit of the node table, as IDs are int32.
var maxSlots = math.MaxInt32

type slot[T any] struct {
	value               T
	left, right, parent ID
	live                bool
}

// Arena is a table of binary tree nodes, addressed by ID. Children and parents
// are stored as indices into the table, thus no node holds a pointer to another
// node.
//
// Nodes stay in the arena until they are released with Free. Freed slots are
// recycled for new nodes.
type Arena[T any] struct {
	slots []slot[T]
	free  []ID
	count int
}

// New creates an empty arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Len returns the number of live nodes in the arena.
func (a *Arena[T]) Len() int {
	return a.count
}

// Leaf creates a node holding v, without children and without a parent.
// Leaf panics with ErrFull if the arena already holds the maximum number of
// nodes addressable by an ID.
func (a *Arena[T]) Leaf(v T) ID {
	var id ID
	if n := len(a.free); n > 0 {
		id = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		if len(a.slots) >= maxSlots {
			panic(fmt.Errorf("%w: %d nodes", ErrFull, len(a.slots)))
		}
		id = ID(len(a.slots))
		a.slots = append(a.slots, slot[T]{})
	}
	a.slots[id] = slot[T]{value: v, left: None, right: None, parent: None, live: true}
	a.count++
	tracer().Debugf("arena: allocated node %d", id)
	return id
}

// Fork creates a node holding v, with left and right attached as its children.
// Either of them may be None. Children still attached elsewhere are detached
// from their previous parent first.
func (a *Arena[T]) Fork(v T, left, right ID) ID {
	id := a.Leaf(v)
	a.ReplaceLeft(id, left)
	a.ReplaceRight(id, right)
	return id
}

func (a *Arena[T]) node(id ID) *slot[T] {
	if !a.valid(id) {
		panic(fmt.Errorf("%w: %d", ErrInvalidID, id))
	}
	return &a.slots[id]
}

func (a *Arena[T]) valid(id ID) bool {
	return id >= 0 && int(id) < len(a.slots) && a.slots[id].live
}

// --- Navigation ------------------------------------------------------------

// Value returns the value of node id.
func (a *Arena[T]) Value(id ID) T {
	return a.node(id).value
}

// ValueRef returns a reference to the value of node id. The reference is valid
// until the next node is allocated in the arena.
func (a *Arena[T]) ValueRef(id ID) *T {
	return &a.node(id).value
}

// SetValue replaces the value of node id.
func (a *Arena[T]) SetValue(id ID, v T) {
	a.node(id).value = v
}

// Left returns the left child of node id, or None.
func (a *Arena[T]) Left(id ID) ID { return a.node(id).left }

// Right returns the right child of node id, or None.
func (a *Arena[T]) Right(id ID) ID { return a.node(id).right }

// Parent returns the parent of node id, or None.
func (a *Arena[T]) Parent(id ID) ID { return a.node(id).parent }

// HasLeft reports whether node id has a left child.
func (a *Arena[T]) HasLeft(id ID) bool { return a.Left(id) != None }

// HasRight reports whether node id has a right child.
func (a *Arena[T]) HasRight(id ID) bool { return a.Right(id) != None }

// HasParent reports whether node id is attached to a parent.
func (a *Arena[T]) HasParent(id ID) bool { return a.Parent(id) != None }

// --- Mutation --------------------------------------------------------------

// ReplaceLeft attaches child as the left child of node id and returns the
// previous left child, which no longer has a parent. child may be None.
func (a *Arena[T]) ReplaceLeft(id, child ID) ID {
	return a.attach(id, child, true)
}

// ReplaceRight attaches child as the right child of node id and returns the
// previous right child, which no longer has a parent. child may be None.
func (a *Arena[T]) ReplaceRight(id, child ID) ID {
	return a.attach(id, child, false)
}

// ReplaceLeftWithLeaf is a shortcut for ReplaceLeft(id, Leaf(v)).
func (a *Arena[T]) ReplaceLeftWithLeaf(id ID, v T) ID {
	a.node(id)
	return a.ReplaceLeft(id, a.Leaf(v))
}

// ReplaceRightWithLeaf is a shortcut for ReplaceRight(id, Leaf(v)).
func (a *Arena[T]) ReplaceRightWithLeaf(id ID, v T) ID {
	a.node(id)
	return a.ReplaceRight(id, a.Leaf(v))
}

// RemoveLeft detaches the left child of node id and returns it (or None).
func (a *Arena[T]) RemoveLeft(id ID) ID {
	return a.ReplaceLeft(id, None)
}

// RemoveRight detaches the right child of node id and returns it (or None).
func (a *Arena[T]) RemoveRight(id ID) ID {
	return a.ReplaceRight(id, None)
}

// Detach removes node id from its parent, if any, and returns id.
func (a *Arena[T]) Detach(id ID) ID {
	n := a.node(id)
	if n.parent != None {
		p := a.node(n.parent)
		if p.left == id {
			p.left = None
		} else if p.right == id {
			p.right = None
		}
		n.parent = None
	}
	return id
}

func (a *Arena[T]) attach(id, child ID, left bool) ID {
	n := a.node(id)
	old := n.right
	if left {
		old = n.left
	}
	if child == old {
		return old
	}
	if child != None {
		a.node(child)
		for p := id; p != None; p = a.slots[p].parent {
			if p == child {
				panic(fmt.Errorf("%w: %d below %d", ErrCycle, child, id))
			}
		}
		a.Detach(child)
		a.slots[child].parent = id
	}
	if old != None {
		a.slots[old].parent = None
	}
	if left {
		n.left = child
	} else {
		n.right = child
	}
	return old
}

// --- Lifetime --------------------------------------------------------------

// Free releases the subtree starting at node id. The node must not be attached
// to a parent. Ids of freed nodes become invalid and may be re-used by later
// allocations.
func (a *Arena[T]) Free(id ID) error {
	if !a.valid(id) {
		return fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	if a.slots[id].parent != None {
		return fmt.Errorf("%w: %d", ErrAttached, id)
	}
	a.release(id)
	return nil
}

func (a *Arena[T]) release(id ID) {
	if id == None {
		return
	}
	n := a.slots[id]
	a.release(n.left)
	a.release(n.right)
	a.slots[id] = slot[T]{left: None, right: None, parent: None}
	a.free = append(a.free, id)
	a.count--
	tracer().Debugf("arena: freed node %d", id)
}

// Check validates the structure of the subtree starting at node id: all ids
// are live and every child links back to its parent.
func (a *Arena[T]) Check(id ID) error {
	if !a.valid(id) {
		return fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	seen := make(map[ID]struct{})
	return a.check(id, seen)
}

func (a *Arena[T]) check(id ID, seen map[ID]struct{}) error {
	if _, ok := seen[id]; ok {
		return fmt.Errorf("%w: %d reached twice", ErrCycle, id)
	}
	seen[id] = struct{}{}
	n := a.slots[id]
	for _, child := range [2]ID{n.left, n.right} {
		if child == None {
			continue
		}
		if !a.valid(child) {
			return fmt.Errorf("%w: child %d of %d", ErrInvalidID, child, id)
		}
		if a.slots[child].parent != id {
			return fmt.Errorf("%w: %d is child of %d", ErrBrokenBackLink, child, id)
		}
		if err := a.check(child, seen); err != nil {
			return err
		}
	}
	return nil
}
